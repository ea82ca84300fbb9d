// Package api provides the HTTP API for the lexfad tokenize daemon.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dekarrin/lexfa/server/result"
	"github.com/dekarrin/lexfa/server/serr"
)

// PathPrefix is the prefix mounted for every route in this package.
const PathPrefix = "/api/v1"

// API holds the daemon's dependencies, shared across every endpoint.
type API struct {
	// BaseDir resolves relative manifest paths in tokenize requests.
	BaseDir string

	// UnauthDelay pauses before responding with HTTP-401/500, to
	// deprioritize such requests, as the teacher's API does.
	UnauthDelay time.Duration

	// SecretConfigured reports whether a bearer secret was supplied at
	// startup, for the health-check probe; it never exposes the secret or
	// its hash.
	SecretConfigured bool
}

func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")
	if strings.ToLower(contentType) != "application/json" {
		return fmt.Errorf("request content-type is not application/json")
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	defer func() {
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewBuffer(bodyData))
	}()

	if err := json.Unmarshal(bodyData, v); err != nil {
		return serr.New("malformed JSON in request", err, serr.ErrBodyUnmarshal)
	}

	return nil
}

// EndpointFunc is a handler that returns a deferred result.Result rather
// than writing directly to the ResponseWriter.
type EndpointFunc func(req *http.Request) result.Result

func (a API) httpEndpoint(ep EndpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		reqID := uuid.New()
		r := ep(req)

		if r.Status == 0 {
			logHTTPResponse(reqID, "ERROR", req, http.StatusInternalServerError, "endpoint result was never populated")
			http.Error(w, "An internal server error occurred", http.StatusInternalServerError)
			return
		}

		if err := r.PrepareMarshaledResponse(); err != nil {
			r = result.Err(http.StatusInternalServerError, "An internal server error occurred", "could not marshal JSON response: "+err.Error())
		}

		if r.IsErr {
			logHTTPResponse(reqID, "ERROR", req, r.Status, r.InternalMsg)
		} else {
			logHTTPResponse(reqID, "INFO", req, r.Status, r.InternalMsg)
		}

		if r.Status == http.StatusUnauthorized || r.Status == http.StatusInternalServerError {
			time.Sleep(a.UnauthDelay)
		}

		r.WriteResponse(w)
	}
}

// logHTTPResponse logs one request, tagged with a per-request correlation
// ID so that a client's complaint can be traced back to a specific log
// line even when many requests arrive concurrently.
func logHTTPResponse(reqID uuid.UUID, level string, req *http.Request, respStatus int, msg string) {
	if len(level) > 5 {
		level = level[0:5]
	}
	for len(level) < 5 {
		level += " "
	}

	remoteIP := strings.SplitN(req.RemoteAddr, ":", 2)[0]
	log.Printf("%s [%s] %s %s %s: HTTP-%d %s", level, reqID, remoteIP, req.Method, req.URL.Path, respStatus, msg)
}
