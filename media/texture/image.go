package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// PixelArray is a raw (height, width, rgba) byte matrix, the shape frame
// decoders output. Rows are stored top to bottom without padding.
type PixelArray struct {
	Width  int
	Height int
	Pix    []byte
}

func NewPixelArray(width, height int) *PixelArray {
	return &PixelArray{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

func NewPixelArrayFromBytes(width, height int, pix []byte) *PixelArray {
	if len(pix) != width*height*4 {
		panic(fmt.Sprintf("Pixel buffer length %d does not match shape (%d, %d, 4)", len(pix), height, width))
	}
	return &PixelArray{Width: width, Height: height, Pix: pix}
}

func (pa *PixelArray) At(x, y int) color.NRGBA {
	i := (y*pa.Width + x) * 4
	return color.NRGBA{R: pa.Pix[i], G: pa.Pix[i+1], B: pa.Pix[i+2], A: pa.Pix[i+3]}
}

func (pa *PixelArray) Set(x, y int, c color.NRGBA) {
	i := (y*pa.Width + x) * 4
	pa.Pix[i] = c.R
	pa.Pix[i+1] = c.G
	pa.Pix[i+2] = c.B
	pa.Pix[i+3] = c.A
}

type ErrInvalidImageInput struct {
	Input interface{}
}

func (e ErrInvalidImageInput) Error() string {
	return fmt.Sprintf("Texture image must be created from image.Image or *PixelArray, not %T", e.Input)
}

// TextureImage is one atlas entry: an rgba pixel matrix plus the hotspot
// used as the sprite's anchor when rendered. Immutable after construction.
type TextureImage struct {
	width   int
	height  int
	hotspot image.Point
	data    *PixelArray
}

// NewTextureImage normalizes a decoded frame into a TextureImage. picture
// is either an image.Image (converted to 4-channel form if needed) or an
// already raw *PixelArray. The zero hotspot means anchor at (0, 0).
func NewTextureImage(picture interface{}, hotspot image.Point) (*TextureImage, error) {
	var data *PixelArray

	switch pic := picture.(type) {
	case *PixelArray:
		data = pic
	case image.Image:
		data = pixelArrayFromImage(pic)
	default:
		return nil, ErrInvalidImageInput{Input: picture}
	}

	return &TextureImage{
		width:   data.Width,
		height:  data.Height,
		hotspot: hotspot,
		data:    data,
	}, nil
}

func pixelArrayFromImage(pic image.Image) *PixelArray {
	bounds := pic.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if nrgba, ok := pic.(*image.NRGBA); ok && nrgba.Stride == w*4 && bounds.Min == image.Pt(0, 0) {
		pix := make([]byte, len(nrgba.Pix))
		copy(pix, nrgba.Pix)
		return NewPixelArrayFromBytes(w, h, pix)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), pic, bounds.Min, draw.Src)
	return NewPixelArrayFromBytes(w, h, nrgba.Pix)
}

func (ti *TextureImage) Width() int {
	return ti.width
}

func (ti *TextureImage) Height() int {
	return ti.height
}

func (ti *TextureImage) Hotspot() image.Point {
	return ti.hotspot
}

// Pixels returns the underlying array without copying.
func (ti *TextureImage) Pixels() *PixelArray {
	return ti.data
}

// Image round-trips the pixel data back into a generic bitmap.
func (ti *TextureImage) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ti.width, ti.height))
	copy(img.Pix, ti.data.Pix)
	return img
}
