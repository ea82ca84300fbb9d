/*
Lexfad runs the optional lexfa tokenize daemon: a single bearer-token
protected HTTP endpoint that builds a token manifest's DFAs and tokenizes
submitted text, for callers that would rather make a network request than
shell out to the lexfa CLI.

Usage:

	lexfad -s SECRET [-a ADDR] [-d BASEDIR]

Exit code 0 on success, non-zero with a message on stderr otherwise.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/dekarrin/lexfa/server/api"
	"github.com/dekarrin/lexfa/server/middle"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitRuntimeError
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	fs := pflag.NewFlagSet("lexfad", pflag.ContinueOnError)
	secret := fs.StringP("secret", "s", "", "bearer token signing secret (required)")
	addr := fs.StringP("addr", "a", ":8080", "address to listen on")
	baseDir := fs.StringP("basedir", "d", ".", "directory manifest paths are resolved relative to")
	unauthDelay := fs.Duration("unauth-delay", time.Second, "delay before responding to unauthorized/failed requests")

	if err := fs.Parse(os.Args[1:]); err != nil {
		returnCode = ExitUsageError
		return
	}

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -s/--secret is required")
		returnCode = ExitUsageError
		return
	}

	// the secret itself verifies bearer JWTs and stays in memory for that.
	// Its bcrypt hash is computed once as a startup check and then
	// discarded; the health endpoint reports "a secret is configured" from
	// SecretConfigured below.
	if _, err := bcrypt.GenerateFromPassword([]byte(*secret), bcrypt.DefaultCost); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not hash secret: %s\n", err.Error())
		returnCode = ExitRuntimeError
		return
	}

	a := api.API{
		BaseDir:          *baseDir,
		UnauthDelay:      *unauthDelay,
		SecretConfigured: true,
	}

	r := chi.NewRouter()
	r.Use(middle.DontPanic())
	r.Get(api.PathPrefix+"/health", a.HTTPGetHealth())
	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Use(middle.RequireBearer([]byte(*secret), *unauthDelay))
		r.Post("/tokenize", a.HTTPPostTokenize())
	})

	fmt.Printf("INFO  lexfad listening on %s\n", *addr)

	if err := http.ListenAndServe(*addr, r); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRuntimeError
	}
}
