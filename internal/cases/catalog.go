// Package cases loads the static preset catalog the playground offers
// as reusable starting briefs.
package cases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromasynth/go-seadream/internal/playground"
)

// ErrCatalogUnavailable is returned when the catalog document is
// missing or malformed. Callers degrade to an empty catalog.
var ErrCatalogUnavailable = errors.New("preset catalog unavailable")

// DefaultPath is the catalog document's location relative to the
// working directory, mirroring where the playground keeps its cases.
func DefaultPath() string {
	return filepath.Join("playgrounds", "seedream_cases.json")
}

// document is the on-disk shape: {"cases": {"<id>": {...}}}.
type document struct {
	Cases map[string]playground.Case `json:"cases"`
}

// Catalog reads presets from a JSON document on disk. It satisfies the
// engine's CatalogSource.
type Catalog struct {
	path string
}

// NewCatalog creates a catalog source for the given document path. An
// empty path uses DefaultPath.
func NewCatalog(path string) *Catalog {
	if path == "" {
		path = DefaultPath()
	}
	return &Catalog{path: path}
}

// Path returns the catalog document path.
func (c *Catalog) Path() string { return c.path }

// Load reads and decodes the catalog document. Each case carries its
// map key as its ID. Insertion order is irrelevant; callers sort.
func (c *Catalog) Load(ctx context.Context) (map[string]playground.Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	out := make(map[string]playground.Case, len(doc.Cases))
	for id, c := range doc.Cases {
		c.ID = id
		out[id] = c
	}
	return out, nil
}
