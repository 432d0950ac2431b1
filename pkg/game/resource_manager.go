package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder

	"github.com/gonewx/shmup/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for loading and caching images and font faces.
//
// Images are read from the embedded file system (see package embedded).
// A failed load is cached too, so a missing boss image is reported once
// and the caller keeps drawing its flat-colour fallback.
//
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	imageCache  map[string]*ebiten.Image     // path -> Image
	imageErrors map[string]error             // path -> load error
	fontSource  *text.GoTextFaceSource       // Go Regular, parsed once
	fontCache   map[float64]*text.GoTextFace // size -> face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:  make(map[string]*ebiten.Image),
		imageErrors: make(map[string]error),
		fontCache:   make(map[float64]*text.GoTextFace),
	}
}

// LoadImage loads an embedded image and caches it for future use.
//
// Parameters:
//   - path: resource path, e.g. "assets/images/boss1.png".
//
// Returns:
//   - The loaded ebiten.Image.
//   - An error if the file is missing or cannot be decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.imageErrors[path]; failed {
		return nil, err
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to open image file %s: %w", path, err)
		rm.imageErrors[path] = err
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("failed to decode image %s: %w", path, err)
		rm.imageErrors[path] = err
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont returns a Go Regular face of the given size.
// The font is compiled into the binary, so this only fails if the
// bundled TTF cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[size] = face
	return face, nil
}
