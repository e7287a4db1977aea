package merchant

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed registry.json
var registryJSON []byte

//go:embed registry_schema.json
var registrySchemaJSON []byte

// Brand is one known merchant with its tax identifiers and name aliases.
// Order in the registry is priority order for alias matching.
type Brand struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	VAT      []string `json:"vat,omitempty"`
	Aliases  []string `json:"aliases"`
}

// Registry holds the known-merchant lexicon: tax-ID lookups, name aliases and
// the short literal chain list used as a last resort.
type Registry struct {
	Brands []Brand  `json:"brands"`
	Chains []string `json:"chains"`

	vatIndex map[string]string // canonical tax ID -> brand name
}

// LoadRegistry validates raw against the registry schema and decodes it.
func LoadRegistry(raw []byte) (*Registry, error) {
	if err := validateRegistry(raw); err != nil {
		return nil, fmt.Errorf("registry does not match schema: %w", err)
	}
	var r Registry
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	r.vatIndex = make(map[string]string)
	for _, b := range r.Brands {
		for _, id := range b.VAT {
			if _, dup := r.vatIndex[id]; !dup {
				r.vatIndex[id] = b.Name
			}
		}
	}
	return &r, nil
}

func validateRegistry(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("registry_schema.json", bytes.NewReader(registrySchemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("registry_schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return schema.Validate(v)
}

// BrandForVAT resolves a canonical tax identifier to a brand name.
func (r *Registry) BrandForVAT(id string) (string, bool) {
	name, ok := r.vatIndex[id]
	return name, ok
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return LoadRegistry(registryJSON)
})

// DefaultRegistry returns the embedded registry, loaded once per process.
// The embedded document is validated at load; a failure here is a build
// defect, not an input error.
func DefaultRegistry() (*Registry, error) {
	return defaultRegistry()
}
