package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/pipeline"
	"github.com/matzehuels/scoreline/pkg/render"
)

// LayoutResponse is the body of POST /api/v1/layout.
type LayoutResponse struct {
	Layout  render.LayoutJSON `json:"layout"`
	Summary string            `json:"summary"`
}

// PresetsResponse is the body of GET /api/v1/presets.
type PresetsResponse struct {
	PageLengths []float64 `json:"page_lengths"`
	DocLengths  []float64 `json:"doc_lengths"`
	Schemes     []string  `json:"schemes"`
	Gutter      float64   `json:"gutter"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	schemes := make([]string, len(imposition.Kinds))
	for i, k := range imposition.Kinds {
		schemes[i] = k.String()
	}
	writeJSON(w, http.StatusOK, PresetsResponse{
		PageLengths: s.cfg.Presets.PageLengths,
		DocLengths:  s.cfg.Presets.DocLengths,
		Schemes:     schemes,
		Gutter:      imposition.GutterSize,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if opts.Scheme == "" {
		opts.Scheme = s.cfg.Defaults.Scheme
	}

	l, err := s.runner.Calculate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LayoutResponse{
		Layout:  render.NewLayoutJSON(l),
		Summary: render.Summary(l),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	opts, err := s.previewOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.runner.Calculate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, hit, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(artifacts[format])
}

// previewOptions reads the query. Lengths are required; scheme and canvas
// fall back to the configured defaults.
func (s *Server) previewOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Scheme:  q.Get("scheme"),
		Offsets: q.Get("offsets"),
		Width:   s.cfg.Canvas.Width,
		Height:  s.cfg.Canvas.Height,
		Labels:  q.Get("labels") == "true",
		Logger:  s.logger,
	}
	if opts.Scheme == "" {
		opts.Scheme = s.cfg.Defaults.Scheme
		if opts.Offsets == "" {
			opts.Offsets = s.cfg.Defaults.Offsets
		}
	}

	var err error
	if opts.PageLength, err = errors.ParseLength("page_length", q.Get("page_length")); err != nil {
		return opts, err
	}
	if opts.DocLength, err = errors.ParseLength("doc_length", q.Get("doc_length")); err != nil {
		return opts, err
	}
	if v := q.Get("width"); v != "" {
		if opts.Width, err = errors.ParseLength("width", v); err != nil {
			return opts, err
		}
	}
	if v := q.Get("height"); v != "" {
		if opts.Height, err = errors.ParseLength("height", v); err != nil {
			return opts, err
		}
	}
	if err := errors.ValidateCanvas(opts.Width, opts.Height); err != nil {
		return opts, err
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}
	return opts, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeDegenerateScale):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Code: code, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
