package api

import (
	"net/http"
	"path/filepath"

	"github.com/dekarrin/lexfa/internal/manifest"
	"github.com/dekarrin/lexfa/internal/scan"
	"github.com/dekarrin/lexfa/server/result"
	"github.com/dekarrin/lexfa/server/serr"
)

// TokenizeRequest is the JSON body of POST /api/v1/tokenize.
type TokenizeRequest struct {
	// Manifest is a path to a token manifest, resolved relative to the
	// daemon's configured base directory.
	Manifest string `json:"manifest"`
	// Input is the text to tokenize.
	Input string `json:"input"`
}

// TokenModel is one token in a TokenizeResponse.
type TokenModel struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// TokenizeResponse is the JSON body of a successful tokenize response.
type TokenizeResponse struct {
	Tokens []TokenModel `json:"tokens"`
}

// HTTPPostTokenize returns the handler for POST /api/v1/tokenize.
func (a API) HTTPPostTokenize() http.HandlerFunc {
	return a.httpEndpoint(a.epPostTokenize)
}

func (a API) epPostTokenize(req *http.Request) result.Result {
	var body TokenizeRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest("request body is not valid JSON", err.Error())
	}

	if body.Manifest == "" {
		return result.BadRequest("manifest is required", serr.New("", serr.ErrBadArgument).Error())
	}

	manifestPath := resolveManifestPath(a.BaseDir, body.Manifest)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return result.BadRequest("manifest could not be loaded", err.Error())
	}

	dfas, err := m.Build(filepath.Dir(manifestPath))
	if err != nil {
		return result.InternalServerError(serr.New("could not build manifest", err, serr.ErrScan).Error())
	}

	scanner := scan.NewScanner(dfas, []rune(body.Input))
	matches := scanner.Tokenize()

	resp := TokenizeResponse{Tokens: make([]TokenModel, 0, len(matches))}
	for _, tok := range matches {
		value := string(tok.TokenValue)
		if tok.AssociatedValue != nil {
			value = *tok.AssociatedValue
		}
		resp.Tokens = append(resp.Tokens, TokenModel{
			ID:     tok.TokenID,
			Value:  value,
			Line:   tok.LineNumber,
			Column: tok.Column,
		})
	}

	return result.OK(resp, "tokenized %d token(s) from manifest %q", len(resp.Tokens), body.Manifest)
}

func resolveManifestPath(baseDir, manifestPath string) string {
	if baseDir == "" || filepath.IsAbs(manifestPath) {
		return manifestPath
	}
	return filepath.Join(baseDir, manifestPath)
}
