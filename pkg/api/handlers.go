package api

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amoor/pkg/buildinfo"
	"github.com/matzehuels/amoor/pkg/config"
	"github.com/matzehuels/amoor/pkg/errors"
	modelio "github.com/matzehuels/amoor/pkg/io"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/pipeline"
	"github.com/matzehuels/amoor/pkg/render/nodelink"
)

// Handler serves the model routes.
type Handler struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// Health reports liveness and the running build.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Short()})
}

// CreateModel runs the full pipeline and returns the simulation document.
func (h *Handler) CreateModel(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "seed %q is not an unsigned integer", s))
			return
		}
		opts.Seed = seed
	}
	if s := q.Get("indent"); s != "" {
		indent, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "indent %q is not an integer", s))
			return
		}
		opts.Indent = indent
	}

	res, err := h.runner.Execute(r.Context(), opts)
	if err != nil {
		h.logger.Warn("model request failed", "run", opts.RunID, "err", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("X-Cache", cacheStatus(res.CacheHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Document)
}

// statsResponse mirrors model.Stats with stable JSON names.
type statsResponse struct {
	RunID       string         `json:"run_id"`
	Nodes       int            `json:"nodes"`
	Edges       int            `json:"edges"`
	FrameNodes  int            `json:"frame_nodes"`
	AnchorNodes int            `json:"anchor_nodes"`
	FixedNodes  int            `json:"fixed_nodes"`
	Cages       int            `json:"cages"`
	RiggedCages int            `json:"rigged_cages"`
	ByCategory  map[string]int `json:"edges_by_category"`
}

// ModelStats builds the model and returns its counts.
func (h *Handler) ModelStats(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	s := m.Stats()
	resp := statsResponse{
		RunID:       RunID(r.Context()),
		Nodes:       m.NodeCount(),
		Edges:       m.EdgeCount(),
		FrameNodes:  s.FrameNodes,
		AnchorNodes: s.AnchorNodes,
		FixedNodes:  s.FixedNodes,
		Cages:       s.Cages,
		RiggedCages: s.RiggedCages,
		ByCategory:  make(map[string]int, len(s.Edges)),
	}
	for c, n := range s.Edges {
		resp.ByCategory[string(c)] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

// ModelGraph builds the model and returns its nodes and edges as JSON.
func (h *Handler) ModelGraph(w http.ResponseWriter, r *http.Request) {
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, modelio.FromModel(m))
}

// ModelPreview builds the model and returns an SVG preview.
func (h *Handler) ModelPreview(w http.ResponseWriter, r *http.Request) {
	view := nodelink.View(r.URL.Query().Get("view"))
	if view != "" && view != nodelink.ViewPlan && view != nodelink.ViewSide {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "view %q (want plan or side)", view))
		return
	}
	m, ok := h.model(w, r)
	if !ok {
		return
	}
	svg, err := nodelink.RenderSVG(r.Context(), nodelink.ToDOT(m, nodelink.Options{View: view}))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render preview"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (h *Handler) model(w http.ResponseWriter, r *http.Request) (*model.Model, bool) {
	opts, err := h.options(w, r)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	m, err := h.runner.Model(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return m, true
}

// options reads the request body into pipeline options.
func (h *Handler) options(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	format, err := requestFormat(r)
	if err != nil {
		return pipeline.Options{}, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	if len(body) == 0 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}
	return pipeline.Options{
		Config:       body,
		ConfigFormat: format,
		RunID:        RunID(r.Context()),
		Logger:       h.logger,
	}, nil
}

var mediaFormats = map[string]string{
	"application/toml":   config.FormatTOML,
	"text/toml":          config.FormatTOML,
	"application/yaml":   config.FormatYAML,
	"application/x-yaml": config.FormatYAML,
	"text/yaml":          config.FormatYAML,
}

func requestFormat(r *http.Request) (string, error) {
	switch f := r.URL.Query().Get("format"); f {
	case config.FormatTOML, config.FormatYAML:
		return f, nil
	case "yml":
		return config.FormatYAML, nil
	case "":
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "format %q (want toml or yaml)", f)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err == nil {
			if f, ok := mediaFormats[mt]; ok {
				return f, nil
			}
		}
	}
	return config.FormatTOML, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
