package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/legaldesk/legal-case-api/api"
	"github.com/legaldesk/legal-case-api/auth"
	"github.com/legaldesk/legal-case-api/config"
)

// Auth exported for testing purposes
type Auth struct {
	Service *auth.Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

// LoginHandler resolves credentials and mints a bearer token on success
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		config.ErrorStatus("failed to resolve login", http.StatusInternalServerError, w, err)
		return
	}
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"response": "invalid credentials"}`))
		return
	}

	token := api.IssueToken(user.Username, user.ID, r)
	b, err := json.Marshal(map[string]interface{}{
		"token": token,
		"user":  user,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// RegisterHandler creates a member account
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Username == "" || req.FullName == "" {
		config.ErrorStatus("username and fullName are required", http.StatusBadRequest, w, errors.New("missing fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.Service.Register(ctx, req.FullName, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			config.ErrorStatus("username already exists", http.StatusConflict, w, err)
			return
		}
		config.ErrorStatus("failed to register user", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
