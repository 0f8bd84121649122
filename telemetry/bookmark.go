package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/blazeforge/ember/config"
)

// BookmarkType identifies the kind of bookmark an automatic detector
// triggered.
type BookmarkType string

const (
	BookmarkIgnitionBreakthrough BookmarkType = "ignition_breakthrough"
	BookmarkCrownFireOnset       BookmarkType = "crown_fire_onset"
	BookmarkPyroCbFormation      BookmarkType = "pyrocb_formation"
	BookmarkSuppressionSuccess   BookmarkType = "suppression_success"
	BookmarkSpotFireSurge        BookmarkType = "spot_fire_surge"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType
	Tick        int32
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector watches a rolling history of WindowStats for notable
// fire-behavior moments: a sudden burned-area growth spike, the first
// crown-fire transition, a pyroCb formation, a suppression drop arresting
// spread, or a surge of spot fires.
type BookmarkDetector struct {
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentPeakGrowthM2 float64 // peak burned-area growth rate seen, for suppression-success
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkIgnitionBreakthrough(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkSuppressionSuccess(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkCrownFireOnset(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPyroCbFormation(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSpotFireSurge(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if stats.BurnedAreaGrowthM2 > bd.recentPeakGrowthM2 {
		bd.recentPeakGrowthM2 = stats.BurnedAreaGrowthM2
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) growthHistory() []float64 {
	history := bd.getHistory()
	out := make([]float64, len(history))
	for i, h := range history {
		out[i] = h.BurnedAreaGrowthM2
	}
	return out
}

// checkIgnitionBreakthrough fires when burned-area growth rate jumps well
// above its rolling average, e.g. a spot fire joining the main front or a
// wind shift opening a new spread direction.
func (bd *BookmarkDetector) checkIgnitionBreakthrough(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}
	cfg := config.Cfg().Telemetry.Bookmarks.IgnitionBreakthrough

	roll := ComputeRolling(bd.growthHistory())
	if roll.Mean <= 0 || stats.BurnedAreaGrowthM2 < cfg.MinAreaM2 {
		return nil
	}

	if stats.BurnedAreaGrowthM2 > roll.Mean*cfg.Multiplier {
		return &Bookmark{
			Type:        BookmarkIgnitionBreakthrough,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("burned-area growth %.0f m2 is %.1fx the rolling average (%.0f m2)", stats.BurnedAreaGrowthM2, stats.BurnedAreaGrowthM2/roll.Mean, roll.Mean),
		}
	}
	return nil
}

// checkSuppressionSuccess fires when, following a suppression drop, the
// burned-area growth rate falls well below its recent peak.
func (bd *BookmarkDetector) checkSuppressionSuccess(stats WindowStats) *Bookmark {
	if stats.SuppressionDrops == 0 || bd.recentPeakGrowthM2 <= 0 {
		return nil
	}
	cfg := config.Cfg().Telemetry.Bookmarks.SuppressionSuccess
	if bd.recentPeakGrowthM2 < cfg.MinPeakGrowthM2 {
		return nil
	}

	drop := 1.0 - stats.BurnedAreaGrowthM2/bd.recentPeakGrowthM2
	if drop >= cfg.DropFraction {
		b := &Bookmark{
			Type:        BookmarkSuppressionSuccess,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("growth rate dropped %.0f%% from peak %.0f m2 after %d suppression drop(s)", drop*100, bd.recentPeakGrowthM2, stats.SuppressionDrops),
		}
		bd.recentPeakGrowthM2 = stats.BurnedAreaGrowthM2
		return b
	}
	return nil
}

func (bd *BookmarkDetector) checkCrownFireOnset(stats WindowStats) *Bookmark {
	cfg := config.Cfg().Telemetry.Bookmarks.CrownFireOnset
	if stats.CrownFireTransitions < cfg.MinTransitions {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkCrownFireOnset,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d crown-fire transition(s) this window", stats.CrownFireTransitions),
	}
}

func (bd *BookmarkDetector) checkPyroCbFormation(stats WindowStats) *Bookmark {
	cfg := config.Cfg().Telemetry.Bookmarks.PyroCbFormation
	if stats.PyroCbFormations < cfg.MinEvents {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPyroCbFormation,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d pyroconvective cloud formation(s) this window", stats.PyroCbFormations),
	}
}

func (bd *BookmarkDetector) checkSpotFireSurge(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}
	cfg := config.Cfg().Telemetry.Bookmarks.SpotFireSurge
	if stats.SpotFireIgnitions < cfg.MinIgnitions {
		return nil
	}

	samples := make([]float64, len(history))
	for i, h := range history {
		samples[i] = float64(h.SpotFireIgnitions)
	}
	roll := ComputeRolling(samples)
	if roll.Mean <= 0 {
		return nil
	}

	if float64(stats.SpotFireIgnitions) > roll.Mean*cfg.Multiplier {
		return &Bookmark{
			Type:        BookmarkSpotFireSurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d spot-fire ignitions is %.1fx the rolling average (%.1f)", stats.SpotFireIgnitions, float64(stats.SpotFireIgnitions)/roll.Mean, roll.Mean),
		}
	}
	return nil
}
