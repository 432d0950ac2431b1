package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ccaa44", want: Color{R: 0xcc, G: 0xaa, B: 0x44, A: 0xff}},
		{in: "#ff000080", want: Color{R: 0xff, A: 0x80}},
		{in: "SaddleBrown", want: Color{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}},
		{in: "#xyz123", wantErr: true},
		{in: "#fff", wantErr: true},
		{in: "notacolor", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorMarshalYAML(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{in: MustColor("gold"), want: "#ffd700"},
		{in: Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, want: "#11223344"},
	}

	for _, tt := range tests {
		got, err := tt.in.MarshalYAML()
		if err != nil {
			t.Fatalf("MarshalYAML() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("MarshalYAML() = %v, want %s", got, tt.want)
		}
	}
}

func TestColorUnmarshalYAMLRejectsNonString(t *testing.T) {
	var out struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: [1, 2]\n"), &out); err == nil {
		t.Error("expected error for non-string color")
	}
}
