package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/rewrite"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

type analyzeRequest struct {
	Text string `json:"text"`
}

type verifyClaimRequest struct {
	ClaimText string `json:"claim_text"`
	ClaimType string `json:"claim_type"`
}

type verifyClaimResponse struct {
	model.Claim
	UpdatedAt string `json:"updated_at"`
}

type rewriteRequest struct {
	Comment  string `json:"comment"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
}

type sourceEntry struct {
	Name        string  `json:"name"`
	Reliability float64 `json:"reliability"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	report, err := s.pipeline.Analyze(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyText) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (s *Server) handleVerifyClaim(w http.ResponseWriter, r *http.Request) {
	claimID := mux.Vars(r)["id"]

	var req verifyClaimRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.ClaimText == "" {
		respondWithError(w, http.StatusBadRequest, "claim_text is required")
		return
	}

	claimType, ok := model.ParseClaimType(req.ClaimType)
	if !ok && req.ClaimType != "" {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown claim_type: %s", req.ClaimType))
		return
	}

	claim, err := s.pipeline.ReVerify(r.Context(), req.ClaimText, claimType)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The caller supplied the ID, so the re-verified claim keeps it.
	claim.ID = claimID

	respondWithJSON(w, http.StatusOK, verifyClaimResponse{
		Claim:     claim,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	if s.rewriter == nil || !s.rewriter.Enabled() {
		respondWithError(w, http.StatusServiceUnavailable, "rewriting is not configured")
		return
	}

	var req rewriteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		respondWithError(w, http.StatusBadRequest, "comment is required")
		return
	}

	tone, ok := rewrite.ParseTone(req.Tone)
	if !ok {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown tone: %s", req.Tone))
		return
	}
	platform, ok := rewrite.ParsePlatform(req.Platform)
	if !ok {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown platform: %s", req.Platform))
		return
	}

	result, err := s.rewriter.RewriteComment(r.Context(), req.Comment, tone, platform)
	if err != nil {
		if errors.Is(err, rewrite.ErrDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("rewrite failed", zap.Error(err))
		respondWithError(w, http.StatusBadGateway, "rewrite failed")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	descriptors := s.pipeline.Sources()

	entries := make([]sourceEntry, 0, len(descriptors))
	for _, d := range descriptors {
		entries = append(entries, sourceEntry{
			Name:        d.Name,
			Reliability: d.Reliability,
			Type:        string(d.Type),
			Description: describeSource(d),
		})
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"sources":       entries,
		"total_sources": len(entries),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"claim_extraction": "operational",
		"verification":     "operational",
	}
	if s.rewriter != nil && s.rewriter.Enabled() {
		services["comment_rewriting"] = "operational"
	} else {
		services["comment_rewriting"] = "disabled"
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}

// describeSource renders the human-readable catalog line, e.g.
// "Encyclopedia source with 85% reliability".
func describeSource(d model.SourceDescriptor) string {
	label := string(d.Type)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return fmt.Sprintf("%s source with %.0f%% reliability", label, d.Reliability*100)
}

// decodeBody parses a JSON request body, answering 400 on failure
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
