package texture

import (
	"github.com/pkg/errors"

	"github.com/genietools/age_media_browser/media/palette"
	"github.com/genietools/age_media_browser/utils"
)

// PackerHint is the position the external bin packer assigned to one
// atlas entry inside the final texture page.
type PackerHint struct {
	X int32
	Y int32
}

// CompressionSettings are png deflate parameters found by the external
// compression search.
type CompressionSettings struct {
	Level    int
	MemLevel int
	Strategy int
}

// SubtextureMeta describes one placed sprite: bounding box in the atlas
// plus the anchor. Field order and widths are a wire contract, the
// downstream serializer emits them as six little-endian int32 values.
type SubtextureMeta struct {
	X  int32
	Y  int32
	W  int32
	H  int32
	CX int32
	CY int32
}

// Bytes serializes the record into its 24-byte wire form.
func (m SubtextureMeta) Bytes() []byte {
	return utils.AsBytes(m)
}

type StructMember struct {
	Name string
	Type string
}

// SubtextureDataFormat returns the struct members of the subtexture
// record, in emission order. Stable across game versions.
func SubtextureDataFormat() []StructMember {
	return []StructMember{
		{"x", "int32_t"},
		{"y", "int32_t"},
		{"w", "int32_t"},
		{"h", "int32_t"},
		{"cx", "int32_t"},
		{"cy", "int32_t"},
	}
}

// Texture is an ordered sequence of atlas entries built from one source
// container. It starts unpacked; the external packer/encoder attaches
// its results exactly once, after which the placement metadata becomes
// readable.
type Texture struct {
	frames []*TextureImage

	packed      bool
	packerHints []PackerHint
	compression *CompressionSettings
	metadata    []SubtextureMeta
}

// NewTexture normalizes the frames of src at the given layer into an
// ordered entry sequence.
//
// Palette-indexed sources resolve each frame's palette number through
// palettes (a frame without a number gets a nil color table) and run
// every frame image through the cutter, fragments keep frame order.
// Self-colored sources fall back to layer 1 when layer 0 has no frames,
// shadow-only assets store their graphics there. Blend-mask sources
// yield one entry per alpha mask.
func NewTexture(src Source, palettes palette.Table, cutter Cutter, layer int) (*Texture, error) {
	if cutter == nil {
		cutter = IdentityCutter{}
	}

	t := &Texture{}

	switch src := src.(type) {
	case PaletteIndexed:
		for iFrame, frame := range src.Provider.Frames(layer) {
			// Palette can be different for every frame
			var pal *palette.ColorTable
			if number, ok := frame.PaletteNumber(); ok {
				var err error
				if pal, err = palettes.Lookup(number); err != nil {
					return nil, errors.Wrapf(err, "Failed to resolve palette of frame %d", iFrame)
				}
			}

			img, err := NewTextureImage(frame.PictureData(pal), frame.Hotspot())
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to convert frame %d", iFrame)
			}

			t.frames = append(t.frames, cutter.Cut(img)...)
		}
	case SelfColored:
		frames := src.Provider.Frames(layer)
		if layer == 0 && len(frames) == 0 {
			// Use shadows if no main graphics are inside
			frames = src.Provider.Frames(1)
		}

		for iFrame, frame := range frames {
			img, err := NewTextureImage(frame.PictureData(), frame.Hotspot())
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to convert frame %d", iFrame)
			}

			t.frames = append(t.frames, img)
		}
	case BlendMask:
		hotspot := src.Provider.MaskHotspot()
		for iMask, mask := range src.Provider.AlphaMasks() {
			img, err := NewTextureImage(mask, hotspot)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to convert alpha mask %d", iMask)
			}

			t.frames = append(t.frames, img)
		}
	default:
		return nil, ErrUnsupportedSource{Source: src}
	}

	return t, nil
}

// Frames returns the entry sequence in serialization order.
func (t *Texture) Frames() []*TextureImage {
	return t.frames
}

func (t *Texture) FrameCount() int {
	return len(t.frames)
}

func (t *Texture) Packed() bool {
	return t.packed
}

// AttachCacheParams stores the external packer and compression results.
// Must be called exactly once, with one hint per entry. The placement
// metadata records are computed here: position from the hint, size and
// anchor from the entry image.
func (t *Texture) AttachCacheParams(hints []PackerHint, compression *CompressionSettings) error {
	if t.packed {
		return errors.New("Cache params already attached")
	}
	if len(hints) != len(t.frames) {
		return errors.Errorf("Got %d packer hints for %d frames", len(hints), len(t.frames))
	}

	t.packerHints = make([]PackerHint, len(hints))
	copy(t.packerHints, hints)
	t.compression = compression

	t.metadata = make([]SubtextureMeta, len(t.frames))
	for i, img := range t.frames {
		t.metadata[i] = SubtextureMeta{
			X:  hints[i].X,
			Y:  hints[i].Y,
			W:  int32(img.Width()),
			H:  int32(img.Height()),
			CX: int32(img.Hotspot().X),
			CY: int32(img.Hotspot().Y),
		}
	}

	t.packed = true
	return nil
}

// CacheParams returns what the packer/encoder attached, both nil while
// the texture is still unpacked.
func (t *Texture) CacheParams() ([]PackerHint, *CompressionSettings) {
	return t.packerHints, t.compression
}

// Metadata returns one placement record per entry, index-aligned with
// Frames. Reading it before AttachCacheParams is a programming error.
func (t *Texture) Metadata() []SubtextureMeta {
	if !t.packed {
		panic("Texture metadata requested before cache params were attached")
	}
	return t.metadata
}
