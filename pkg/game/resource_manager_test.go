package game

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/shmup/pkg/embedded"
)

func TestLoadImageMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/images/broken.png": {Data: []byte("not a png")},
	}, fstest.MapFS{})

	rm := NewResourceManager()

	_, err := rm.LoadImage("assets/images/boss1.png")
	if err == nil || !strings.Contains(err.Error(), "failed to open image file") {
		t.Fatalf("LoadImage() error = %v, want open failure", err)
	}
	// 失败结果被缓存
	_, again := rm.LoadImage("assets/images/boss1.png")
	if again != err {
		t.Errorf("second LoadImage() error = %v, want cached %v", again, err)
	}

	_, err = rm.LoadImage("assets/images/broken.png")
	if err == nil || !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("LoadImage() error = %v, want decode failure", err)
	}
	if rm.GetImage("assets/images/broken.png") != nil {
		t.Error("GetImage() should be nil for failed loads")
	}
}

func TestLoadFontIsCached(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadFont(18)
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if face.Size != 18 {
		t.Errorf("face.Size = %v, want 18", face.Size)
	}

	again, _ := rm.LoadFont(18)
	if again != face {
		t.Error("LoadFont() should return the cached face")
	}
	other, _ := rm.LoadFont(16)
	if other == face || other.Source != face.Source {
		t.Error("different sizes should share the font source but not the face")
	}
}
