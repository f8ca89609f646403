package texture

import (
	"image"
	"testing"
)

func TestSubtextureInfoNormalization(t *testing.T) {
	meta := SubtextureMeta{X: 100, Y: 50, W: 25, H: 10, CX: 110, CY: 55}
	info := NewSubtextureInfo(meta, 200, 100)

	if info.Pos != image.Pt(100, 50) || info.Size != image.Pt(25, 10) || info.AnchorPos != image.Pt(110, 55) {
		t.Errorf("integer view %+v does not match %+v", info, meta)
	}

	wantTile := [4]float32{0.5, 0.5, 0.125, 0.1}
	for i, want := range wantTile {
		if info.TileParams[i] != want {
			t.Errorf("TileParams[%d] = %v; expected %v", i, info.TileParams[i], want)
		}
	}

	if info.AnchorParams[0] != 0.55 || info.AnchorParams[1] != 0.55 {
		t.Errorf("AnchorParams = %v; expected (0.55, 0.55)", info.AnchorParams)
	}
}
