package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/pipeline"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// matchRequest is the shared request body for /score, /counterfactual and
// /action. The resume arrives either as raw text or pre-structured;
// requirements come either explicitly or from the job text.
type matchRequest struct {
	ResumeText   string                `json:"resume_text"`
	ResumePath   string                `json:"resume_path"`
	Resume       *types.ResumeDocument `json:"resume"`
	JobText      string                `json:"job_text"`
	JobPath      string                `json:"job_path"`
	JobTitle     string                `json:"job_title"`
	Requirements []string              `json:"requirements" validate:"omitempty,dive,required"`
}

type scoreResponse struct {
	Score       float64                       `json:"score"`
	Confidence  float64                       `json:"confidence"`
	Evaluations []types.RequirementEvaluation `json:"evaluations"`
}

type counterfactualResponse struct {
	Sections    map[types.Section][]types.Suggestion `json:"sections,omitempty"`
	Suggestions []types.Suggestion                   `json:"suggestions"`
}

type actionResponse struct {
	Decision types.Decision `json:"decision"`
	Details  map[string]any `json:"details,omitempty"`
}

// decodeMatchRequest decodes and validates the shared request body.
func (s *Server) decodeMatchRequest(r *http.Request) (*matchRequest, error) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrMalformedRequest{Cause: err}
	}

	if err := s.validate.Struct(&req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, &ErrValidation{Field: errs[0].Field(), Message: errs[0].Tag()}
		}
		return nil, &ErrValidation{Field: "request", Message: err.Error()}
	}

	if req.ResumeText == "" && req.ResumePath == "" && req.Resume == nil {
		return nil, &ErrValidation{Field: "resume_text", Message: "one of resume_text, resume_path or resume is required"}
	}
	if req.JobText == "" && req.JobPath == "" && len(req.Requirements) == 0 {
		return nil, &ErrValidation{Field: "job_text", Message: "one of job_text, job_path or requirements is required"}
	}
	return &req, nil
}

// runPipeline executes the pipeline for a decoded request.
func (s *Server) runPipeline(r *http.Request, req *matchRequest) (*pipeline.Result, error) {
	return pipeline.Run(r.Context(), pipeline.Options{
		ResumeText:   req.ResumeText,
		ResumeSource: req.ResumePath,
		Resume:       req.Resume,
		JobText:      req.JobText,
		JobSource:    req.JobPath,
		JobTitle:     req.JobTitle,
		Requirements: req.Requirements,
		APIKey:       s.apiKey,
		Model:        s.model,
		Logger:       s.log,
	})
}

// handleScore evaluates requirements and returns the aggregate score.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeMatchRequest(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res, err := s.runPipeline(r, req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse{
		Score:       res.Score.Score,
		Confidence:  res.Score.Confidence,
		Evaluations: res.Evaluations,
	})
}

// handleCounterfactual returns edit suggestions for non-met requirements.
func (s *Server) handleCounterfactual(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeMatchRequest(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res, err := s.runPipeline(r, req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	s.jsonResponse(w, http.StatusOK, counterfactualResponse{
		Sections:    res.Sections,
		Suggestions: suggestions,
	})
}

// handleAction returns the recommended action for a match.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeMatchRequest(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res, err := s.runPipeline(r, req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, actionResponse{
		Decision: res.Decision.Decision,
		Details:  res.Decision.Details,
	})
}
