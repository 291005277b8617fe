package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestCropRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	img.Set(60, 30, color.White)

	cropped, err := CropRegion(img, Region{X1: 50, Y1: 20, X2: 90, Y2: 40})
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", b.Min)
	}
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 40x20", b.Dx(), b.Dy())
	}

	// The white pixel moves by the region offset
	r, g, bl, _ := cropped.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Errorf("pixel (10,10): got (%d,%d,%d), want white", r>>8, g>>8, bl>>8)
	}
}

func TestCropRegion_Invalid(t *testing.T) {
	img := createInMemoryImage(100, 100, color.Black)

	tests := []struct {
		name   string
		region Region
	}{
		{"outside right", Region{X1: 50, Y1: 0, X2: 101, Y2: 10}},
		{"outside top", Region{X1: 0, Y1: -1, X2: 10, Y2: 10}},
		{"empty width", Region{X1: 10, Y1: 0, X2: 10, Y2: 10}},
		{"inverted", Region{X1: 20, Y1: 20, X2: 10, Y2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.region); err == nil {
				t.Errorf("CropRegion(%+v) should fail", tt.region)
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("1, 2,30,40")
	if err != nil {
		t.Fatalf("ParseRegion failed: %v", err)
	}
	want := Region{X1: 1, Y1: 2, X2: 30, Y2: 40}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,x", "1,2,3,4,5"} {
		if _, err := ParseRegion(bad); err == nil {
			t.Errorf("ParseRegion(%q) should fail", bad)
		}
	}
}
