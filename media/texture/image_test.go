package texture

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}

	ti, err := NewTextureImage(src, image.Point{})
	if err != nil {
		t.Fatalf("NewTextureImage: %v", err)
	}

	if ti.Width() != 3 || ti.Height() != 2 {
		t.Errorf("got size %dx%d; expected 3x2", ti.Width(), ti.Height())
	}

	if !bytes.Equal(ti.Image().Pix, src.Pix) {
		t.Errorf("round trip changed pixels: %v != %v", ti.Image().Pix, src.Pix)
	}
}

func TestImageFromNonRGBABitmap(t *testing.T) {
	// Grayscale input must be converted to 4-channel form first.
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 10})
	src.SetGray(1, 0, color.Gray{Y: 200})

	ti, err := NewTextureImage(src, image.Point{})
	if err != nil {
		t.Fatalf("NewTextureImage: %v", err)
	}

	want := []byte{10, 10, 10, 255, 200, 200, 200, 255}
	if !bytes.Equal(ti.Pixels().Pix, want) {
		t.Errorf("converted pixels %v; expected %v", ti.Pixels().Pix, want)
	}
}

func TestImageFromPixelArray(t *testing.T) {
	pa := NewPixelArray(4, 3)
	ti, err := NewTextureImage(pa, image.Pt(1, 2))
	if err != nil {
		t.Fatalf("NewTextureImage: %v", err)
	}

	if ti.Width() != 4 || ti.Height() != 3 {
		t.Errorf("got size %dx%d; expected 4x3", ti.Width(), ti.Height())
	}
	if ti.Pixels() != pa {
		t.Error("Pixels() must return the source array without copying")
	}
	if ti.Hotspot() != image.Pt(1, 2) {
		t.Errorf("got hotspot %v; expected (1,2)", ti.Hotspot())
	}
}

func TestImageHotspotDefault(t *testing.T) {
	ti, err := NewTextureImage(NewPixelArray(1, 1), image.Point{})
	if err != nil {
		t.Fatalf("NewTextureImage: %v", err)
	}
	if ti.Hotspot() != image.Pt(0, 0) {
		t.Errorf("got hotspot %v; expected (0,0)", ti.Hotspot())
	}
}

func TestImageInvalidInput(t *testing.T) {
	for _, input := range []interface{}{nil, 42, "pixels", []byte{1, 2, 3}} {
		_, err := NewTextureImage(input, image.Point{})
		if err == nil {
			t.Errorf("NewTextureImage(%#v) did not fail", input)
			continue
		}
		if _, ok := err.(ErrInvalidImageInput); !ok {
			t.Errorf("NewTextureImage(%#v) returned %T; expected ErrInvalidImageInput", input, err)
		}
	}

	_, err := NewTextureImage(42, image.Point{})
	if !strings.Contains(err.Error(), "int") {
		t.Errorf("error %q does not name the received type", err.Error())
	}
}

func TestPixelArrayShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched pixel buffer did not panic")
		}
	}()
	NewPixelArrayFromBytes(2, 2, make([]byte, 3))
}
