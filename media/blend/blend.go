package blend

import (
	"fmt"
	"image"
	"image/color"

	"github.com/genietools/age_media_browser/media/texture"
)

// Isometric terrain tile dimensions in pixels.
const (
	TileWidth      = 96
	TileHeight     = 48
	TileHalfWidth  = TileWidth / 2
	TileHalfHeight = TileHeight / 2
)

// Blendomatic mask values run 0..128, 128 is fully opaque.
const maxMaskAlpha = 128

// Mode is one terrain blending mode: a fixed table of procedural alpha
// masks, one per tile shape. It feeds the texture builder through the
// texture.BlendMask source wrapper.
type Mode struct {
	masks []*texture.PixelArray
}

func NewMode(masks []*texture.PixelArray) *Mode {
	return &Mode{masks: masks}
}

func (m *Mode) AlphaMasks() []*texture.PixelArray {
	return m.masks
}

// MaskHotspot anchors every mask tile the same way:
// the hotspot is in the west corner of a tile.
func (m *Mode) MaskHotspot() image.Point {
	return image.Pt(0, TileHalfHeight)
}

// MaskFromAlpha expands one per-pixel alpha table into rgba picture
// data: white pixels with the mask value stretched to the full alpha
// range.
func MaskFromAlpha(width, height int, alpha []byte) *texture.PixelArray {
	if len(alpha) != width*height {
		panic(fmt.Sprintf("Alpha mask length %d does not match shape (%d, %d)", len(alpha), height, width))
	}

	pa := texture.NewPixelArray(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := int(alpha[y*width+x])
			if v > maxMaskAlpha {
				v = maxMaskAlpha
			}
			pa.Set(x, y, color.NRGBA{
				R: 0xff,
				G: 0xff,
				B: 0xff,
				A: uint8(v * 255 / maxMaskAlpha),
			})
		}
	}
	return pa
}
