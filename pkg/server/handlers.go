package server

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mindtree/pkg/buildinfo"
	"github.com/matzehuels/mindtree/pkg/document"
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/layout"
	"github.com/matzehuels/mindtree/pkg/mindmap"
	"github.com/matzehuels/mindtree/pkg/pipeline"
	"github.com/matzehuels/mindtree/pkg/render"
	"github.com/matzehuels/mindtree/pkg/storage"
)

// CacheHeader reports whether a layout was served from the cache.
const CacheHeader = "X-Cache"

// =============================================================================
// Health
// =============================================================================

type healthResponse struct {
	Status  string         `json:"status"`
	Build   buildinfo.Info `json:"build"`
	Engines []string       `json:"engines"`
	Storage bool           `json:"storage"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Build:   buildinfo.Get(),
		Engines: layout.Names(),
		Storage: s.store != nil,
	})
}

// =============================================================================
// Stateless layout and render
// =============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	l, hit, err := s.layoutFromBody(w, r, opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	l, hit, err := s.layoutFromBody(w, r, opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	setCacheHeader(w, hit)
	s.writeArtifact(w, r, l, opts)
}

// =============================================================================
// Stored layouts
// =============================================================================

type listResponse struct {
	Layouts []storage.Summary `json:"layouts"`
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	l, _, err := s.layoutFromBody(w, r, opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	rec := storage.NewRecord(l)
	if err := s.store.Save(r.Context(), rec); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.Header().Set("Location", "/v1/layouts/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec.Summary())
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, s.logger, apperrors.New(apperrors.ErrCodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	list, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if list == nil {
		list = []storage.Summary{}
	}
	writeJSON(w, http.StatusOK, listResponse{Layouts: list})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.writeArtifact(w, r, rec.Layout, opts)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := storage.ValidateID(id); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadRecord(w http.ResponseWriter, r *http.Request) (*storage.Record, bool) {
	if !s.requireStore(w, r) {
		return nil, false
	}
	id := chi.URLParam(r, "id")
	if err := storage.ValidateID(id); err != nil {
		writeError(w, r, s.logger, err)
		return nil, false
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, s.logger, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if s.store != nil {
		return true
	}
	writeError(w, r, s.logger, apperrors.New(apperrors.ErrCodeUnsupported, "layout storage is not configured"))
	return false
}

// =============================================================================
// Helpers
// =============================================================================

// layoutFromBody parses the request document and lays it out.
func (s *Server) layoutFromBody(w http.ResponseWriter, r *http.Request, opts pipeline.Options) (graph.Layout, bool, error) {
	m, err := s.readDocument(w, r, opts)
	if err != nil {
		return graph.Layout{}, false, err
	}
	return s.runner.ComputeLayoutWithCacheInfo(r.Context(), m, opts)
}

func (s *Server) readDocument(w http.ResponseWriter, r *http.Request, opts pipeline.Options) (*mindmap.Mindmap, error) {
	format, err := inputFormat(r)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDocument, "request body is empty")
	}
	return pipeline.Parse(body, format, opts)
}

// writeArtifact renders the single format named in opts.Formats.
func (s *Server) writeArtifact(w http.ResponseWriter, r *http.Request, l graph.Layout, opts pipeline.Options) {
	artifacts, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	format := render.Format(opts.Formats[0])
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[string(format)])
}

// options layers query parameters over the server defaults. Render routes
// take exactly one format (default svg).
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	opts := s.cfg.Defaults
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))
	q := r.URL.Query()

	if v := q.Get("engine"); v != "" {
		opts.Engine = v
	}
	if v := q.Get("theme"); v != "" {
		opts.Theme = v
	}
	if v := q.Get("connector"); v != "" {
		opts.Connector = v
	}
	if v := q.Get("renderer"); v != "" {
		opts.Renderer = v
	}
	flags := []struct {
		name string
		dst  *bool
	}{
		{"refresh", &opts.Refresh},
		{"embed_font", &opts.EmbedFont},
		{"detailed", &opts.Detailed},
	}
	for _, f := range flags {
		if v := q.Get(f.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, apperrors.New(apperrors.ErrCodeInvalidInput, "%s must be a boolean", f.name)
			}
			*f.dst = b
		}
	}
	if v := q.Get("margin"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidInput, "margin must be a number")
		}
		opts.Margin = &f
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidInput, "scale must be a number")
		}
		opts.Scale = f
	}

	format := q.Get("format")
	if format == "" {
		format = string(render.FormatSVG)
	}
	opts.Formats = []string{format}

	if err := opts.ValidateForLayout(); err != nil {
		return opts, err
	}
	if err := opts.ValidateForRender(); err != nil {
		return opts, err
	}
	return opts, nil
}

// inputFormat picks the document format from ?input= or Content-Type.
// JSON is the default.
func inputFormat(r *http.Request) (document.Format, error) {
	if v := r.URL.Query().Get("input"); v != "" {
		return document.ParseFormat(v)
	}
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return document.FormatJSON, nil
	}
	switch {
	case strings.HasSuffix(mt, "yaml"):
		return document.FormatYAML, nil
	case strings.HasSuffix(mt, "toml"):
		return document.FormatTOML, nil
	}
	return document.FormatJSON, nil
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(CacheHeader, "hit")
	} else {
		w.Header().Set(CacheHeader, "miss")
	}
}
