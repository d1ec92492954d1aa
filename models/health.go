package models

// HealthCheckResponse is the health check response
type HealthCheckResponse struct {
	Alive   bool   `json:"alive"`
	Backend string `json:"backend"`
}
