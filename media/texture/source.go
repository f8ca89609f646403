package texture

import (
	"fmt"
	"image"

	"github.com/genietools/age_media_browser/media/palette"
)

// PalettedFrame is one decoded frame of a palette-indexed sprite.
// SLP, SMP and SMX frames all fit this shape.
type PalettedFrame interface {
	// PaletteNumber returns the palette the frame pixels index into.
	// ok == false means the frame carries its own colors and no table
	// lookup must be attempted.
	PaletteNumber() (number int, ok bool)
	PictureData(pal *palette.ColorTable) *PixelArray
	Hotspot() image.Point
}

// ColoredFrame is one decoded frame of a self-colored sprite (SLD).
type ColoredFrame interface {
	PictureData() *PixelArray
	Hotspot() image.Point
}

// PalettedProvider enumerates decoded frames of one sprite layer.
// Frame order is the source container order and is preserved all the
// way into the atlas entry sequence.
type PalettedProvider interface {
	Frames(layer int) []PalettedFrame
}

type ColoredProvider interface {
	Frames(layer int) []ColoredFrame
}

// MaskProvider yields procedural alpha masks instead of decoded frames.
type MaskProvider interface {
	AlphaMasks() []*PixelArray
	MaskHotspot() image.Point
}

// Source is the closed set of frame sources a Texture can be built from.
// One wrapper per legacy encoding family keeps the builder dispatch
// exhaustive, a source kind without a wrapper cannot be constructed.
type Source interface {
	sourceKind() string
}

// PaletteIndexed wraps the three palette-indexed encodings (SLP, SMP, SMX).
type PaletteIndexed struct {
	Provider PalettedProvider
}

// SelfColored wraps the SLD encoding, which stores full colors per pixel.
type SelfColored struct {
	Provider ColoredProvider
}

// BlendMask wraps a procedural blending-mode mask table.
type BlendMask struct {
	Provider MaskProvider
}

func (PaletteIndexed) sourceKind() string { return "palette-indexed" }
func (SelfColored) sourceKind() string    { return "self-colored" }
func (BlendMask) sourceKind() string      { return "blend-mask" }

type ErrUnsupportedSource struct {
	Source interface{}
}

func (e ErrUnsupportedSource) Error() string {
	return fmt.Sprintf("Cannot create texture from unknown source type: %T", e.Source)
}
