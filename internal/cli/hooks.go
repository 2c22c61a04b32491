package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/observability"
)

// logHooks writes search and cache events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSearchStart(_ context.Context, pegs, discs int) {
	h.logger.Debug("search start", "pegs", pegs, "discs", discs)
}

func (h *logHooks) OnSearchComplete(_ context.Context, ev observability.SearchEvent) {
	if ev.Err != nil {
		h.logger.Debug("search failed", "run_id", ev.RunID, "err", ev.Err, "duration", ev.Duration)
		return
	}
	h.logger.Debug("search complete",
		"run_id", ev.RunID,
		"outcome", ev.Outcome,
		"moves", ev.Moves,
		"expanded", ev.Expanded,
		"cached", ev.Cached,
		"duration", ev.Duration)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.SearchHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)
