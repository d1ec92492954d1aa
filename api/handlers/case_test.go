package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legaldesk/legal-case-api/api/handlers"
	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

func newCaseHandler(t *testing.T) (handlers.Case, *databases.LocalStore) {
	t.Helper()
	store, err := databases.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return handlers.Case{Repo: repository.New(store, false), Hub: handlers.NewHub()}, store
}

func TestCaseHandler(t *testing.T) {
	c, _ := newCaseHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/cases", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var cases []models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	assert.Len(t, cases, 4)
}

func TestCaseGroupHandler(t *testing.T) {
	c, _ := newCaseHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/case-groups", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseGroupHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var groups []models.CaseGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &groups))
	assert.Len(t, groups, 1)
}

func TestCaseDetailByIDHandler(t *testing.T) {
	c, _ := newCaseHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/cases/CASE_CIVIL_DALAT_146/detail", nil)
	req = mux.SetURLVars(req, map[string]string{"case_id": "CASE_CIVIL_DALAT_146"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseDetailByIDHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var detail models.CaseDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.Equal(t, "CASE_CIVIL_DALAT_146", detail.ID)
	assert.NotEmpty(t, detail.Timeline)
}

func TestCaseDetailByIDHandlerNotFound(t *testing.T) {
	c, _ := newCaseHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/cases/CASE_NOPE/detail", nil)
	req = mux.SetURLVars(req, map[string]string{"case_id": "CASE_NOPE"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseDetailByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"response": "case not found"}`, rr.Body.String())
}

func TestCaseCreateHandlerGeneratesID(t *testing.T) {
	c, store := newCaseHandler(t)

	body := `{"title": "Vụ án mới", "status": "Sắp diễn ra", "type": "Lao động"}`
	req := httptest.NewRequest("POST", "/api/v1/cases", strings.NewReader(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseCreateHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "CASE_"))

	// the empty detail was synthesized alongside the summary
	detail, err := store.ReadCaseDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vụ án mới", detail.Title)
}

func TestCaseCreateHandlerBadBody(t *testing.T) {
	c, _ := newCaseHandler(t)

	req := httptest.NewRequest("POST", "/api/v1/cases", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCaseDetailUpdateHandlerPathIDWins(t *testing.T) {
	c, store := newCaseHandler(t)

	detail := models.CaseDetail{
		Case:  models.Case{ID: "CASE_SOMETHING_ELSE", Title: "Tiêu đề mới", Status: models.StatusCompleted},
		Judge: "Nguyễn Văn Thẩm",
	}
	payload, err := json.Marshal(detail)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/v1/cases/CASE_CIVIL_DALAT_146/detail", bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"case_id": "CASE_CIVIL_DALAT_146"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseDetailUpdateHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var saved models.CaseDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Equal(t, "CASE_CIVIL_DALAT_146", saved.ID)

	// the summary projection was refreshed too
	cases, err := store.ReadAllCases(context.Background())
	require.NoError(t, err)
	for _, got := range cases {
		if got.ID == "CASE_CIVIL_DALAT_146" {
			assert.Equal(t, "Tiêu đề mới", got.Title)
			assert.Equal(t, models.StatusCompleted, got.Status)
		}
	}
}

func TestCaseDeleteHandler(t *testing.T) {
	c, store := newCaseHandler(t)

	// materialize the seeds
	_, err := store.ReadAllCases(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/v1/cases/CASE_CIVIL_DALAT_146", nil)
	req = mux.SetURLVars(req, map[string]string{"case_id": "CASE_CIVIL_DALAT_146"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CaseDeleteHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cases, err := store.ReadAllCases(context.Background())
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	_, err = store.ReadCaseDetail(context.Background(), "CASE_CIVIL_DALAT_146")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}
