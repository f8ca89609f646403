package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestIdentityCutter(t *testing.T) {
	img, _ := NewTextureImage(NewPixelArray(5, 5), image.Point{})
	out := IdentityCutter{}.Cut(img)
	if len(out) != 1 || out[0] != img {
		t.Errorf("identity cutter returned %v", out)
	}
}

func TestStripCutterPassthrough(t *testing.T) {
	img, _ := NewTextureImage(NewPixelArray(8, 2), image.Point{})

	for _, c := range []StripCutter{{MaxWidth: 0}, {MaxWidth: 8}, {MaxWidth: 100}} {
		out := c.Cut(img)
		if len(out) != 1 || out[0] != img {
			t.Errorf("StripCutter%+v split a fitting image into %d parts", c, len(out))
		}
	}
}

func TestStripCutterSplit(t *testing.T) {
	src := NewPixelArray(25, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 25; x++ {
			src.Set(x, y, color.NRGBA{R: byte(x), G: byte(y), A: 255})
		}
	}
	img, _ := NewTextureImage(src, image.Pt(12, 1))

	out := StripCutter{MaxWidth: 10}.Cut(img)
	if len(out) != 3 {
		t.Fatalf("got %d strips; expected 3", len(out))
	}

	wantWidths := []int{10, 10, 5}
	wantHotspots := []image.Point{{12, 1}, {2, 1}, {-8, 1}}
	for i, strip := range out {
		if strip.Width() != wantWidths[i] || strip.Height() != 2 {
			t.Errorf("strip %d is %dx%d; expected %dx2", i, strip.Width(), strip.Height(), wantWidths[i])
		}
		if strip.Hotspot() != wantHotspots[i] {
			t.Errorf("strip %d hotspot %v; expected %v", i, strip.Hotspot(), wantHotspots[i])
		}
	}

	// pixel at strip-local (0, 1) of the last strip is source (20, 1)
	if got := out[2].Pixels().At(0, 1); got.R != 20 || got.G != 1 {
		t.Errorf("last strip starts with pixel %+v; expected source column 20", got)
	}
}
