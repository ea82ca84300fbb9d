package api

import (
	"net/http"

	"github.com/dekarrin/lexfa/server/result"
)

// HealthModel reports whether the daemon has a bearer secret configured,
// without ever exposing the secret or its hash.
type HealthModel struct {
	SecretConfigured bool `json:"secret_configured"`
}

// HTTPGetHealth returns a handler for the unauthenticated health probe.
func (a API) HTTPGetHealth() http.HandlerFunc {
	return a.httpEndpoint(a.epGetHealth)
}

func (a API) epGetHealth(req *http.Request) result.Result {
	resp := HealthModel{SecretConfigured: a.SecretConfigured}
	return result.OK(resp, "health check")
}
