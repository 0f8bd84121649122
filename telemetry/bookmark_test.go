package telemetry

import (
	"testing"

	"github.com/blazeforge/ember/config"
)

func init() {
	config.MustInit("")
}

func TestBookmarkDetector_IgnitionBreakthrough(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{
			WindowEndTick:      int32(i * 600),
			BurnedAreaGrowthM2: 100,
		})
	}

	bookmarks := bd.Check(WindowStats{
		WindowEndTick:      3000,
		BurnedAreaGrowthM2: 500,
	})

	found := false
	for _, bm := range bookmarks {
		if bm.Type == BookmarkIgnitionBreakthrough {
			found = true
		}
	}
	if !found {
		t.Error("expected ignition_breakthrough bookmark")
	}
}

func TestBookmarkDetector_CrownFireOnset(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, CrownFireTransitions: 2})

	found := false
	for _, bm := range bookmarks {
		if bm.Type == BookmarkCrownFireOnset {
			found = true
		}
	}
	if !found {
		t.Error("expected crown_fire_onset bookmark")
	}
}

func TestBookmarkDetector_PyroCbFormation(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, PyroCbFormations: 1})

	found := false
	for _, bm := range bookmarks {
		if bm.Type == BookmarkPyroCbFormation {
			found = true
		}
	}
	if !found {
		t.Error("expected pyrocb_formation bookmark")
	}
}

func TestBookmarkDetector_SuppressionSuccess(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), BurnedAreaGrowthM2: 400})
	}

	bookmarks := bd.Check(WindowStats{
		WindowEndTick:      2400,
		BurnedAreaGrowthM2: 50,
		SuppressionDrops:   1,
	})

	found := false
	for _, bm := range bookmarks {
		if bm.Type == BookmarkSuppressionSuccess {
			found = true
		}
	}
	if !found {
		t.Error("expected suppression_success bookmark")
	}
}

func TestBookmarkDetector_SpotFireSurge(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), SpotFireIgnitions: 1})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, SpotFireIgnitions: 6})

	found := false
	for _, bm := range bookmarks {
		if bm.Type == BookmarkSpotFireSurge {
			found = true
		}
	}
	if !found {
		t.Error("expected spot_fire_surge bookmark")
	}
}
