package sound

import (
	"github.com/genietools/age_media_browser/config"
	"github.com/genietools/age_media_browser/utils"
)

// NoCivFilter selects items of every civilization.
const NoCivFilter = -1

// SoundItem is one playable entry of a sound definition from the .dat
// file. The table parser hands items over already decoded.
type SoundItem struct {
	ResourceID int32
	CivID      int32 // NoCivFilter - not scoped to a civilization
	FileName   string
}

// NewSoundItem decodes the legacy codepage file name field.
func NewSoundItem(resourceID, civID int32, rawName []byte) SoundItem {
	return SoundItem{
		ResourceID: resourceID,
		CivID:      civID,
		FileName:   utils.BytesToString(rawName),
	}
}

// Sound is one sound definition: an ordered item table. Order is the
// .dat table order and is preserved in every flattened id list.
type Sound struct {
	ID    int32
	Items []SoundItem
}

// ResourceIDs flattens the item table into resource ids, keeping items
// that match civID or are not civilization scoped. NoCivFilter keeps
// everything. Duplicate ids are preserved.
func (s *Sound) ResourceIDs(civID int32) []int32 {
	ids := make([]int32, 0, len(s.Items))
	for _, item := range s.Items {
		if civID == NoCivFilter || item.CivID == NoCivFilter || item.CivID == civID {
			ids = append(ids, item.ResourceID)
		}
	}
	return ids
}

// RoRSound is the reduced-capability variant for Rise of Rome data.
// Its .dat has no civilization entry on sound items, so civID is
// accepted and ignored. That is documented behavior, not a bug.
type RoRSound struct {
	Sound
}

func (s *RoRSound) ResourceIDs(civID int32) []int32 {
	ids := make([]int32, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ResourceID)
	}
	return ids
}

// Flattener is the common view over version-specific sound definitions.
type Flattener interface {
	ResourceIDs(civID int32) []int32
}

// ForVersion wraps a sound definition in the variant matching the
// configured game version.
func ForVersion(s Sound) Flattener {
	if config.GetGameVersion() == config.GameRoR {
		return &RoRSound{s}
	}
	return &s
}
