package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/api"
	"github.com/legaldesk/legal-case-api/config"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

// Case exported for testing purposes
type Case struct {
	Repo *repository.CaseRepository
	Hub  *Hub
}

// CaseHandler returns all case summaries
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := c.Repo.GetAllCases(ctx)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(cases)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseGroupHandler returns all case groups
func (c Case) CaseGroupHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	groups, err := c.Repo.GetCaseGroups(ctx)
	if err != nil {
		config.ErrorStatus("failed to get case groups", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(groups)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseDetailByIDHandler returns the full record for one case
func (c Case) CaseDetailByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	detail, err := c.Repo.GetCaseDetailByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case detail", http.StatusInternalServerError, w, err)
		return
	}
	if detail == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"response": "case not found"}`))
		return
	}

	b, err := json.Marshal(detail)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseCreateHandler creates a case summary and its empty detail
func (c Case) CaseCreateHandler(w http.ResponseWriter, r *http.Request) {
	var newCase models.Case
	if err := json.NewDecoder(r.Body).Decode(&newCase); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if newCase.ID == "" {
		newCase.ID = "CASE_" + uuid.NewString()
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.Repo.CreateCase(ctx, newCase); err != nil {
		config.ErrorStatus("failed to create case", http.StatusInternalServerError, w, err)
		return
	}
	c.Hub.Broadcast("case_created", newCase.ID)

	b, err := json.Marshal(newCase)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CaseDetailUpdateHandler replaces the full detail record and refreshes the
// derived summary. The id in the path wins over the id in the body.
func (c Case) CaseDetailUpdateHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var detail models.CaseDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	detail.ID = caseID

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	saved, err := c.Repo.UpdateCaseDetail(ctx, detail)
	if err != nil {
		config.ErrorStatus("failed to save case detail", http.StatusInternalServerError, w, err)
		return
	}
	c.Hub.Broadcast("case_updated", caseID)

	b, err := json.Marshal(saved)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseDeleteHandler removes a case and its detail
func (c Case) CaseDeleteHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.Repo.DeleteCase(ctx, caseID); err != nil {
		config.ErrorStatus("failed to delete case", http.StatusInternalServerError, w, err)
		return
	}
	c.Hub.Broadcast("case_deleted", caseID)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"response": "case deleted"}`))
}
