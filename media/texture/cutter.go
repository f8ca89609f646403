package texture

import "image"

// Cutter subdivides one oversized image into atlas-eligible fragments.
// Cut always returns at least one image.
type Cutter interface {
	Cut(img *TextureImage) []*TextureImage
}

// IdentityCutter passes every image through untouched. It is the default
// when no cutter is supplied, so the builder has no nil-cutter branch.
type IdentityCutter struct{}

func (IdentityCutter) Cut(img *TextureImage) []*TextureImage {
	return []*TextureImage{img}
}

// StripCutter splits images wider than MaxWidth into vertical strips.
// Hotspots translate into each strip's local coordinates.
type StripCutter struct {
	MaxWidth int
}

func (c StripCutter) Cut(img *TextureImage) []*TextureImage {
	if c.MaxWidth <= 0 || img.Width() <= c.MaxWidth {
		return []*TextureImage{img}
	}

	src := img.Pixels()
	out := make([]*TextureImage, 0, (img.Width()+c.MaxWidth-1)/c.MaxWidth)

	for x0 := 0; x0 < img.Width(); x0 += c.MaxWidth {
		w := img.Width() - x0
		if w > c.MaxWidth {
			w = c.MaxWidth
		}

		strip := NewPixelArray(w, img.Height())
		for y := 0; y < img.Height(); y++ {
			srcRow := (y*src.Width + x0) * 4
			copy(strip.Pix[y*w*4:(y+1)*w*4], src.Pix[srcRow:srcRow+w*4])
		}

		hotspot := image.Pt(img.Hotspot().X-x0, img.Hotspot().Y)
		fragment, err := NewTextureImage(strip, hotspot)
		if err != nil {
			panic(err) // strip is always a *PixelArray
		}
		out = append(out, fragment)
	}

	return out
}
