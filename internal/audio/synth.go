// Package audio 生成游戏音效的 PCM 数据
//
// 音效不依赖外部文件，由简单的波形合成：频率在持续时间内从 StartFreq
// 线性滑到 EndFreq，音量按线性包络衰减。输出为 Ebitengine 要求的
// 16-bit 有符号小端立体声 PCM。
package audio

import (
	"fmt"
	"io"
	"math"
)

// Waveform 波形类型
type Waveform int

const (
	// WaveSquare 方波（射击、命中）
	WaveSquare Waveform = iota
	// WaveSine 正弦波（Boss 击破）
	WaveSine
	// WaveNoise 噪声（爆炸）
	WaveNoise
)

// Tone 一个合成音效的参数
type Tone struct {
	Wave      Waveform
	StartFreq float64 // 起始频率（Hz）
	EndFreq   float64 // 结束频率（Hz）
	Duration  float64 // 时长（秒）
	Volume    float64 // 0.0 ~ 1.0
}

// bytesPerFrame 每个采样帧的字节数：2 声道 x 16 bit
const bytesPerFrame = 4

// PCMStream 内存中的 PCM 数据
// 实现 io.ReadSeeker，可直接交给 audio.Context 创建播放器
type PCMStream struct {
	data   []byte
	offset int64
}

// Synthesize 按采样率生成音效
func Synthesize(tone Tone, sampleRate int) (*PCMStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if tone.Duration <= 0 {
		return nil, fmt.Errorf("invalid tone duration: %v", tone.Duration)
	}
	if tone.Volume < 0 || tone.Volume > 1 {
		return nil, fmt.Errorf("tone volume out of range: %v", tone.Volume)
	}

	frames := int(tone.Duration * float64(sampleRate))
	data := make([]byte, frames*bytesPerFrame)

	phase := 0.0
	noise := uint32(0x9e3779b9)
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := tone.StartFreq + (tone.EndFreq-tone.StartFreq)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch tone.Wave {
		case WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case WaveSine:
			v = math.Sin(2 * math.Pi * phase)
		case WaveNoise:
			// xorshift32
			noise ^= noise << 13
			noise ^= noise >> 17
			noise ^= noise << 5
			v = float64(noise)/float64(math.MaxUint32)*2 - 1
		default:
			return nil, fmt.Errorf("unknown waveform: %d", tone.Wave)
		}

		envelope := 1 - progress
		sample := int16(v * envelope * tone.Volume * math.MaxInt16)

		// 左右声道相同
		off := i * bytesPerFrame
		data[off] = byte(sample)
		data[off+1] = byte(sample >> 8)
		data[off+2] = byte(sample)
		data[off+3] = byte(sample >> 8)
	}

	return &PCMStream{data: data}, nil
}

// Bytes 返回完整的 PCM 数据
func (s *PCMStream) Bytes() []byte {
	return s.data
}

// Read implements io.Reader.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length 返回 PCM 数据总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}
