package audio

import (
	"io"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
		rate int
		want int64
	}{
		{name: "square", tone: Tone{Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.1, Volume: 0.5}, rate: 48000, want: 4800 * 4},
		{name: "sine", tone: Tone{Wave: WaveSine, StartFreq: 220, EndFreq: 660, Duration: 0.5, Volume: 1}, rate: 44100, want: 22050 * 4},
		{name: "noise", tone: Tone{Wave: WaveNoise, Duration: 0.25, Volume: 0.3}, rate: 48000, want: 12000 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Synthesize(tt.tone, tt.rate)
			if err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			if s.Length() != tt.want {
				t.Errorf("Length() = %d, want %d", s.Length(), tt.want)
			}
		})
	}
}

func TestSynthesizeInvalid(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
		rate int
	}{
		{name: "zero rate", tone: Tone{Duration: 0.1, Volume: 0.5}, rate: 0},
		{name: "zero duration", tone: Tone{Volume: 0.5}, rate: 48000},
		{name: "loud", tone: Tone{Duration: 0.1, Volume: 2}, rate: 48000},
		{name: "bad wave", tone: Tone{Wave: Waveform(9), Duration: 0.1, Volume: 0.5}, rate: 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Synthesize(tt.tone, tt.rate); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestSynthesizeEnvelope 包络衰减：最后一个采样接近静音，声道一致
func TestSynthesizeEnvelope(t *testing.T) {
	s, err := Synthesize(Tone{Wave: WaveSquare, StartFreq: 440, EndFreq: 440, Duration: 0.05, Volume: 1}, 48000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	data := s.Bytes()

	first := int16(uint16(data[0]) | uint16(data[1])<<8)
	if first < 30000 {
		t.Errorf("first sample = %d, want near full scale", first)
	}

	n := len(data)
	last := int16(uint16(data[n-4]) | uint16(data[n-3])<<8)
	if last > 100 || last < -100 {
		t.Errorf("last sample = %d, want near silence", last)
	}

	for i := 0; i < n; i += 4 {
		if data[i] != data[i+2] || data[i+1] != data[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestPCMStreamReadSeek(t *testing.T) {
	s := &PCMStream{data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}

	buf := make([]byte, 3)
	n, err := s.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("Read() = %d, %v", n, err)
	}

	pos, err := s.Seek(-2, io.SeekEnd)
	if err != nil || pos != 6 {
		t.Fatalf("Seek(-2, SeekEnd) = %d, %v", pos, err)
	}
	n, _ = s.Read(buf)
	if n != 2 || buf[0] != 7 || buf[1] != 8 {
		t.Errorf("Read after seek = %v (n=%d)", buf[:n], n)
	}
	if _, err := s.Read(buf); err != io.EOF {
		t.Errorf("Read at end error = %v, want EOF", err)
	}
	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("expected error for negative position")
	}
}
