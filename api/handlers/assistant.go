package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/legaldesk/legal-case-api/api"
	"github.com/legaldesk/legal-case-api/assistant"
	"github.com/legaldesk/legal-case-api/config"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

// Assistant exported for testing purposes
type Assistant struct {
	AI   *assistant.Client
	Repo *repository.CaseRepository
}

type chatRequest struct {
	Query  string `json:"query"`
	CaseID string `json:"caseId,omitempty"`
}

// ChatHandler answers a free-form question grounded in the caller's current
// view: the named case when caseId is set, otherwise the full list.
func (a Assistant) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var detail *models.CaseDetail
	if req.CaseID != "" {
		d, err := a.Repo.GetCaseDetailByID(ctx, req.CaseID)
		if err != nil {
			config.ErrorStatus("failed to get case detail", http.StatusInternalServerError, w, err)
			return
		}
		detail = d
	}

	var cases []models.Case
	var groups []models.CaseGroup
	if detail == nil {
		var err error
		cases, err = a.Repo.GetAllCases(ctx)
		if err != nil {
			config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
			return
		}
		groups, err = a.Repo.GetCaseGroups(ctx)
		if err != nil {
			config.ErrorStatus("failed to get case groups", http.StatusInternalServerError, w, err)
			return
		}
	}

	contextData := assistant.BuildCaseContext(cases, groups, detail)
	answer := a.AI.GenerateLegalAnalysis(r.Context(), req.Query, contextData)

	b, err := json.Marshal(map[string]string{"answer": answer})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
