package renderer

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected float64
	}{
		{"zero stays zero", 0.0, 0.0},
		{"negative maps to zero", -0.5, 0.0},
		{"one stays one", 1.0, 1.0},
		{"quarter becomes half", 0.25, 0.5},
		{"values below one brighten", 0.5, 0.7071067811865476},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToGamma(tt.linear); got != tt.expected {
				t.Errorf("LinearToGamma(%v) = %v, expected %v", tt.linear, got, tt.expected)
			}
		})
	}
}

func TestWriteColor_Quantization(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected string
	}{
		{"black", core.NewVec3(0, 0, 0), "0 0 0\n"},
		{"white clamps to 255", core.NewVec3(1, 1, 1), "255 255 255\n"},
		{"overbright clamps to 255", core.NewVec3(4, 10, 100), "255 255 255\n"},
		{"negative clamps to 0", core.NewVec3(-1, 0, 0), "0 0 0\n"},
		// 0.25 linear -> 0.5 gamma -> 128
		{"mid gray", core.NewVec3(0.25, 0.25, 0.25), "128 128 128\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteColor(&buf, tt.color); err != nil {
				t.Fatalf("WriteColor failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestWriteColor_ChannelRange(t *testing.T) {
	// No channel may ever quantize outside [0, 255]
	colors := []core.Vec3{
		core.NewVec3(0.999, 0.999, 0.999),
		core.NewVec3(1.0, 1.0, 1.0),
		core.NewVec3(0.9999999, 1.0000001, 2),
		core.NewVec3(-3, 0.5, 1e9),
	}

	for _, c := range colors {
		var buf bytes.Buffer
		if err := WriteColor(&buf, c); err != nil {
			t.Fatalf("WriteColor failed: %v", err)
		}
		for _, field := range strings.Fields(buf.String()) {
			v, err := strconv.Atoi(field)
			if err != nil {
				t.Fatalf("Non-integer channel %q for color %v", field, c)
			}
			if v < 0 || v > 255 {
				t.Errorf("Channel value %d out of range for color %v", v, c)
			}
		}
	}
}
