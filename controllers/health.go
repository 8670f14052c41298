package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/catalog"
)

// HealthController reports server liveness and the catalog load state
type HealthController struct {
	Source catalog.Source
}

// NewHealthController creates a new HealthController
func NewHealthController(source catalog.Source) *HealthController {
	return &HealthController{Source: source}
}

// Healthz answers liveness probes; the catalog field surfaces whether the
// startup fetch is still pending, succeeded, or failed.
func (hc *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"catalog": hc.Source.State().String(),
	})
}
