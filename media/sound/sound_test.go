package sound

import (
	"reflect"
	"testing"

	"github.com/genietools/age_media_browser/config"
)

func TestRoRSoundIgnoresCiv(t *testing.T) {
	snd := &RoRSound{Sound{
		ID: 3,
		Items: []SoundItem{
			{ResourceID: 5},
			{ResourceID: 5},
			{ResourceID: 9},
		},
	}}

	want := []int32{5, 5, 9}
	for _, civID := range []int32{NoCivFilter, 0, 1, 42} {
		if got := snd.ResourceIDs(civID); !reflect.DeepEqual(got, want) {
			t.Errorf("ResourceIDs(%d) = %v; expected %v", civID, got, want)
		}
	}
}

var civFilterTests = []struct {
	civID int32
	want  []int32
}{
	{NoCivFilter, []int32{10, 11, 12, 13}},
	{1, []int32{10, 11, 13}},
	{2, []int32{10, 12, 13}},
	{3, []int32{10, 13}},
}

func TestSoundCivFilter(t *testing.T) {
	snd := &Sound{
		Items: []SoundItem{
			{ResourceID: 10, CivID: NoCivFilter},
			{ResourceID: 11, CivID: 1},
			{ResourceID: 12, CivID: 2},
			{ResourceID: 13, CivID: NoCivFilter},
		},
	}

	for _, test := range civFilterTests {
		if got := snd.ResourceIDs(test.civID); !reflect.DeepEqual(got, test.want) {
			t.Errorf("ResourceIDs(%d) = %v; expected %v", test.civID, got, test.want)
		}
	}
}

func TestForVersion(t *testing.T) {
	defer config.SetGameVersion(config.GameUnknown)

	snd := Sound{Items: []SoundItem{
		{ResourceID: 1, CivID: 2},
		{ResourceID: 3, CivID: 4},
	}}

	config.SetGameVersion(config.GameRoR)
	if got := ForVersion(snd).ResourceIDs(2); !reflect.DeepEqual(got, []int32{1, 3}) {
		t.Errorf("ror flattener returned %v; expected every item", got)
	}

	config.SetGameVersion(config.GameAoC)
	if got := ForVersion(snd).ResourceIDs(2); !reflect.DeepEqual(got, []int32{1}) {
		t.Errorf("aoc flattener returned %v; expected the civ 2 item", got)
	}
}

func TestNewSoundItemFileName(t *testing.T) {
	item := NewSoundItem(7, NoCivFilter, []byte("WOLOLO.WAV\x00\x00\x00junk"))
	if item.FileName != "WOLOLO.WAV" {
		t.Errorf("got file name %q; expected WOLOLO.WAV", item.FileName)
	}
	if item.ResourceID != 7 || item.CivID != NoCivFilter {
		t.Errorf("item fields %+v", item)
	}
}
