package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/scoreline/pkg/config"
	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	s := New(config.Default(), pipeline.NewRunner(nil, nil, logger), logger)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return e
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("got %d %q, want 200 \"ok\"", resp.StatusCode, body)
	}
	if resp.Header.Get(HeaderRequestID) == "" {
		t.Error("missing request ID header")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("request ID = %q, want abc-123", got)
	}
}

func TestPresets(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/presets")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got PresetsResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	want := PresetsResponse{
		PageLengths: []float64{11, 12, 13, 17, 18, 19, 26},
		DocLengths:  []float64{3.625, 4, 4.25, 5.5, 8.5, 11},
		Schemes:     []string{"bifold", "trifold", "gatefold", "custom"},
		Gutter:      0.125,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)

	body := `{"page_length": 12, "doc_length": 3.625, "scheme": "custom", "offsets": "1, -1, abc, 10"}`
	resp, err := http.Post(ts.URL+"/api/v1/layout", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got LayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Layout.Count != 3 {
		t.Errorf("count = %d, want 3", got.Layout.Count)
	}
	if diff := cmp.Diff([]float64{0.438, 4.188, 7.938}, got.Layout.Starts); diff != "" {
		t.Errorf("starts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1.438, 5.188, 8.938}, got.Layout.Scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(got.Summary, "Max Documents: 3\n") {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestLayoutInvalid(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"zero doc", `{"page_length": 12, "doc_length": 0}`, errors.ErrCodeInvalidInput},
		{"negative page", `{"page_length": -5, "doc_length": 3}`, errors.ErrCodeInvalidInput},
		{"unknown scheme", `{"page_length": 12, "doc_length": 3, "scheme": "zigzag"}`, errors.ErrCodeInvalidScheme},
		{"malformed", `{"page_length": "twelve"}`, errors.ErrCodeInvalidInput},
		{"unknown field", `{"page_length": 12, "doc_length": 3, "gutter": 1}`, errors.ErrCodeInvalidInput},
		{"too many documents", `{"page_length": 1e13, "doc_length": 0.001}`, errors.ErrCodeInvalidInput},
		{"count beyond int range", `{"page_length": 1e20, "doc_length": 1}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/layout", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if e := decodeError(t, resp); e.Code != tt.code || e.Error == "" {
				t.Errorf("error = %+v, want code %s", e, tt.code)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"", "image/svg+xml", "<svg"},
		{"svg", "image/svg+xml", "<svg"},
		{"png", "image/png", "\x89PNG"},
		{"pdf", "application/pdf", "%PDF"},
		{"json", "application/json", "{"},
		{"txt", "text/plain; charset=utf-8", "Max Documents: 2"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/v1/preview?page_length=12&doc_length=4&scheme=gatefold&format=" + tt.format)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.HasPrefix(string(body), tt.prefix) {
				t.Errorf("body starts with %.20q, want %q", body, tt.prefix)
			}
		})
	}
}

func TestPreviewErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
		code   errors.Code
	}{
		{"missing page", "doc_length=4", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"text doc", "page_length=12&doc_length=four", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad format", "page_length=12&doc_length=4&format=gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad scheme", "page_length=12&doc_length=4&scheme=zigzag", http.StatusBadRequest, errors.ErrCodeInvalidScheme},
		{"zero width", "page_length=12&doc_length=4&width=0", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"huge png width", "page_length=12&doc_length=4&format=png&width=1e6", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"huge height", "page_length=12&doc_length=4&height=20000", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"too many documents", "page_length=1e9&doc_length=0.001", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"degenerate scale", "page_length=1.7e308&doc_length=0.8e308&width=1e-20", http.StatusUnprocessableEntity, errors.ErrCodeDegenerateScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/v1/preview?" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if e := decodeError(t, resp); e.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Code, tt.code)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeInvalidFormat, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeDegenerateScale, "x"), http.StatusUnprocessableEntity},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
