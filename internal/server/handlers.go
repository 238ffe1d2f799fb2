package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/Ananya54321/handwritten/pkg/buildinfo"
	"github.com/Ananya54321/handwritten/pkg/errors"
	"github.com/Ananya54321/handwritten/pkg/handwriting"
)

// generateRequest is the JSON body accepted by POST /v1/generate.
type generateRequest struct {
	Text       string `json:"text"`
	OutputType string `json:"output_type,omitempty"`
	InkColor   string `json:"ink_color,omitempty"`
	Ruled      bool   `json:"ruled,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`
	NoCache    bool   `json:"no_cache,omitempty"`
}

// generateResponse is returned for non-PDF output types. Pages are
// always base64-encoded for JSON transport.
type generateResponse struct {
	OutputType string   `json:"output_type"`
	PageCount  int      `json:"page_count"`
	Width      int      `json:"width"`
	Pages      []string `json:"pages"`
	CacheHit   bool     `json:"cache_hit"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "invalid request body: "+err.Error())
		return
	}

	if req.OutputType == "" {
		req.OutputType = s.cfg.DefaultOutputType
	}

	result, err := s.runner.Execute(r.Context(), handwriting.Options{
		Text:       req.Text,
		OutputType: handwriting.OutputType(req.OutputType),
		InkColor:   req.InkColor,
		Ruled:      req.Ruled,
		Seed:       req.Seed,
		NoCache:    req.NoCache,
		Logger:     s.logger,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if result.OutputType.IsPDF() {
		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.PDF)
		return
	}

	resp := generateResponse{
		OutputType: string(result.OutputType),
		PageCount:  result.Stats.PageCount,
		Width:      result.Stats.Width,
		Pages:      result.PagesBase64,
		CacheHit:   result.CacheInfo.Hit,
	}
	if resp.Pages == nil {
		resp.Pages = make([]string, len(result.Pages))
		for i, p := range result.Pages {
			resp.Pages[i] = base64.StdEncoding.EncodeToString(p)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// writeError maps pipeline errors to HTTP responses. Validation errors
// are the caller's fault; everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeErrorJSON(w, status, string(code), errors.UserMessage(err))
}

func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
