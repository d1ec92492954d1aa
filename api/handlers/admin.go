package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/api"
	"github.com/legaldesk/legal-case-api/config"
	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/models"
)

// Admin exported for testing purposes
type Admin struct {
	Local *databases.LocalStore
	Cloud *databases.CloudStore
}

// ExportHandler streams the full local dataset as a downloadable JSON bundle
func (a Admin) ExportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bundle, err := a.Local.ExportData(ctx)
	if err != nil {
		config.ErrorStatus("failed to export data", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}

	filename := fmt.Sprintf("du_lieu_to_tung_%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ImportHandler replaces local collections with the uploaded bundle. Only
// collections present in the payload are touched; a payload that does not
// parse leaves everything untouched.
func (a Admin) ImportHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		config.ErrorStatus("failed to read request body", http.StatusBadRequest, w, err)
		return
	}

	var bundle models.ExportBundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		config.ErrorStatus("failed to parse import bundle", http.StatusBadRequest, w, err)
		return
	}

	if err := a.Local.ImportData(body); err != nil {
		config.ErrorStatus("failed to import data", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("imported data bundle",
		"cases", len(bundle.Cases),
		"groups", len(bundle.Groups),
		"details", len(bundle.CaseDetails),
		"users", len(bundle.Users))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"response": "import complete"}`))
}

// MigrateHandler copies the local dataset into the cloud backend. Available
// only when a cloud connection was established at boot.
func (a Admin) MigrateHandler(w http.ResponseWriter, r *http.Request) {
	if a.Cloud == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"response": "cloud backend is not configured"}`))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bundle, err := a.Local.ExportData(ctx)
	if err != nil {
		config.ErrorStatus("failed to read local data", http.StatusInternalServerError, w, err)
		return
	}

	if err := a.Cloud.Migrate(ctx, bundle.Cases, bundle.Groups, bundle.CaseDetails); err != nil {
		config.ErrorStatus("failed to migrate data", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"response": "migration complete"}`))
}
