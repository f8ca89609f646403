package texture

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// SubtextureInfo is the renderer-facing view of one placement record:
// integer atlas coordinates plus the same values normalized to the atlas
// page dimensions, ready for a uniform upload.
type SubtextureInfo struct {
	Pos       image.Point
	Size      image.Point
	AnchorPos image.Point

	// (x, y, w, h) scaled into [0, 1] texture space.
	TileParams mgl32.Vec4
	// (cx, cy) scaled into [0, 1] texture space.
	AnchorParams mgl32.Vec2
}

func NewSubtextureInfo(meta SubtextureMeta, atlasWidth, atlasHeight uint32) SubtextureInfo {
	aw := float32(atlasWidth)
	ah := float32(atlasHeight)

	return SubtextureInfo{
		Pos:       image.Pt(int(meta.X), int(meta.Y)),
		Size:      image.Pt(int(meta.W), int(meta.H)),
		AnchorPos: image.Pt(int(meta.CX), int(meta.CY)),
		TileParams: mgl32.Vec4{
			float32(meta.X) / aw,
			float32(meta.Y) / ah,
			float32(meta.W) / aw,
			float32(meta.H) / ah,
		},
		AnchorParams: mgl32.Vec2{
			float32(meta.CX) / aw,
			float32(meta.CY) / ah,
		},
	}
}
