package blend

import (
	"image"
	"testing"

	"github.com/genietools/age_media_browser/media/texture"
)

func TestMaskFromAlpha(t *testing.T) {
	pa := MaskFromAlpha(2, 2, []byte{0, 64, 128, 200})

	wantAlpha := []byte{0, 127, 255, 255} // 200 clamps to the 128 maximum
	for i, want := range wantAlpha {
		c := pa.At(i%2, i/2)
		if c.A != want {
			t.Errorf("pixel %d alpha %d; expected %d", i, c.A, want)
		}
		if c.R != 0xff || c.G != 0xff || c.B != 0xff {
			t.Errorf("pixel %d color %+v; expected white", i, c)
		}
	}
}

func TestMaskFromAlphaShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched alpha table did not panic")
		}
	}()
	MaskFromAlpha(2, 2, []byte{1, 2, 3})
}

func TestModeTexture(t *testing.T) {
	mode := NewMode([]*texture.PixelArray{
		MaskFromAlpha(1, 1, []byte{128}),
		MaskFromAlpha(1, 1, []byte{0}),
		MaskFromAlpha(1, 1, []byte{64}),
		MaskFromAlpha(1, 1, []byte{32}),
	})

	tex, err := texture.NewTexture(texture.BlendMask{Provider: mode}, nil, nil, 0)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}

	if tex.FrameCount() != 4 {
		t.Fatalf("got %d entries; expected one per alpha mask", tex.FrameCount())
	}
	for i, img := range tex.Frames() {
		if img.Hotspot() != image.Pt(0, TileHalfHeight) {
			t.Errorf("mask %d hotspot %v; expected the west tile corner (0,%d)",
				i, img.Hotspot(), TileHalfHeight)
		}
	}
}
