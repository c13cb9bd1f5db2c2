package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amoor/pkg/model"
)

// LogHooks writes every event as a debug line to a logger.
// It implements PipelineHooks, CacheHooks and APIHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnBuildStart(_ context.Context, runID string, g model.Grid, anchors int) {
	h.logger.Debug("build start", "run", runID, "grid", g.Rows*g.Cols, "anchors", anchors)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, runID string, s model.Stats, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "run", runID, "took", d, "err", err)
		return
	}
	h.logger.Debug("build done", "run", runID, "nodes", s.FrameNodes+s.AnchorNodes, "took", d)
}

func (h *LogHooks) OnSerializeStart(_ context.Context, runID string) {
	h.logger.Debug("serialize start", "run", runID)
}

func (h *LogHooks) OnSerializeComplete(_ context.Context, runID string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("serialize failed", "run", runID, "took", d, "err", err)
		return
	}
	h.logger.Debug("serialize done", "run", runID, "bytes", size, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h *LogHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "route", route, "status", status, "took", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ APIHooks      = (*LogHooks)(nil)
)
