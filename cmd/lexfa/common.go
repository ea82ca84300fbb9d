package main

import (
	"path/filepath"

	"github.com/dekarrin/lexfa/internal/manifest"
)

// loadedManifest pairs a parsed manifest with the directory its token file
// paths are resolved relative to.
type loadedManifest struct {
	manifest manifest.Manifest
	baseDir  string
}

func loadManifest(path string) (loadedManifest, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return loadedManifest{}, err
	}
	return loadedManifest{manifest: m, baseDir: filepath.Dir(path)}, nil
}
