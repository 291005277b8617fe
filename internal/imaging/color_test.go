package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50, DefaultThreshold)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (Pixel{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.IsContour {
		t.Error("orange should not pass the light-gray threshold")
	}
	if result.X != 50 || result.Y != 50 {
		t.Errorf("coordinates: got (%d,%d), want (50,50)", result.X, result.Y)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name        string
		color       color.RGBA
		wantHex     string
		wantHue     int
		wantContour bool
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", 0, false},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00", 120, false},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF", 240, false},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", 0, true},
		{"light gray", color.RGBA{200, 200, 200, 255}, "#C8C8C8", 0, true},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5, DefaultThreshold)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.IsContour != tt.wantContour {
				t.Errorf("IsContour: got %v, want %v", result.IsContour, tt.wantContour)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x at width", 10, 5},
		{"y at height", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y, DefaultThreshold); err == nil {
				t.Errorf("SampleColor(%d,%d) should fail", tt.x, tt.y)
			}
		})
	}
}
