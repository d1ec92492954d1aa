package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/api"
	"github.com/legaldesk/legal-case-api/api/scheduler"
	"github.com/legaldesk/legal-case-api/assistant"
	"github.com/legaldesk/legal-case-api/auth"
	"github.com/legaldesk/legal-case-api/config"
	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

// localReadDelay mirrors the loading signature of a remote call when the
// local backend is active.
const localReadDelay = 300 * time.Millisecond

// App stores the router and the selected backend, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	Store        databases.Store
	Local        *databases.LocalStore
	Cloud        *databases.CloudStore
	Repo         *repository.CaseRepository
	CloudEnabled bool

	scheduler *scheduler.Scheduler
}

// Initialize selects the backend, seeds the auth collection store, and
// builds the router. The backend decision is made exactly once, here; no
// request path ever re-evaluates it.
func (a *App) Initialize() error {
	local, err := databases.NewLocalStore(a.Config.DataDir)
	if err != nil {
		zap.S().With(err).Error("failed to open local store")
		return err
	}
	a.Local = local

	cloud, ok := databases.ConnectCloud(&a.Config)
	if ok {
		a.Cloud = cloud
		a.Store = cloud
		a.CloudEnabled = true
		zap.S().Info("legal-case-api has connected to the cloud database")
	} else {
		a.Store = local
		zap.S().Info("legal-case-api is serving from local storage")
	}

	a.Repo = repository.New(a.Store, a.CloudEnabled)
	if !a.CloudEnabled {
		a.Repo.LocalLatency = localReadDelay

		a.scheduler = scheduler.NewScheduler(local, a.Config.BackupDir)
		a.scheduler.Start()
	}

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	authService := &auth.Service{Users: a.Local}
	m := api.MiddlewareAuth{Auth: authService}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	hub := NewHub()
	c := Case{Repo: a.Repo, Hub: hub}
	au := Auth{Service: authService}
	admin := Admin{Local: a.Local, Cloud: a.Cloud}
	ai := Assistant{AI: assistant.New(a.Config.GeminiAPIKey), Repo: a.Repo}
	uploads := UploadsHandler{}

	// healthchex
	r.HandleFunc("/health", a.healthCheckHandler)
	r.HandleFunc("/ws", hub.ServeWS)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/login", http.HandlerFunc(au.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/register", http.HandlerFunc(au.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseCreateHandler))).Methods("POST")
	apiCreate.Handle("/cases/{case_id}/detail", api.Middleware(http.HandlerFunc(c.CaseDetailByIDHandler))).Methods("GET")
	apiCreate.Handle("/cases/{case_id}/detail", api.Middleware(http.HandlerFunc(c.CaseDetailUpdateHandler))).Methods("PUT")
	apiCreate.Handle("/cases/{case_id}", api.Middleware(http.HandlerFunc(c.CaseDeleteHandler))).Methods("DELETE")
	apiCreate.Handle("/case-groups", api.Middleware(http.HandlerFunc(c.CaseGroupHandler))).Methods("GET")

	apiCreate.Handle("/admin/export", api.Middleware(http.HandlerFunc(admin.ExportHandler))).Methods("GET")
	apiCreate.Handle("/admin/import", api.Middleware(http.HandlerFunc(admin.ImportHandler))).Methods("POST")
	apiCreate.Handle("/admin/migrate", api.Middleware(http.HandlerFunc(admin.MigrateHandler))).Methods("POST")

	apiCreate.Handle("/assistant/chat", api.Middleware(http.HandlerFunc(ai.ChatHandler))).Methods("POST")
	apiCreate.Handle("/uploads/signature", api.Middleware(http.HandlerFunc(uploads.GenerateSignature))).Methods("GET")

	return r
}

func (a *App) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	backend := "local"
	if a.CloudEnabled {
		backend = "cloud"
	}
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive:   true,
		Backend: backend,
	})
	_, _ = io.WriteString(w, string(b))
}
