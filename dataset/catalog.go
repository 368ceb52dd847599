// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed data/organizations.yaml
var organizationsYAML []byte

var (
	// ErrInvalidCatalog is returned when catalog content violates a structural rule.
	ErrInvalidCatalog = errors.New("dataset: invalid catalog")

	// ErrUnknownVariable indicates a variable key that the catalog does not declare.
	ErrUnknownVariable = errors.New("dataset: unknown variable")
)

// Catalog is an ordered variable list plus the records described by it.
type Catalog struct {
	Variables []Variable `yaml:"variables" json:"variables"`
	Records   []Record   `yaml:"records" json:"records"`
}

// Default decodes the embedded organization catalog.
func Default() (*Catalog, error) {
	return Parse(organizationsYAML)
}

// Parse decodes and validates a YAML catalog.
// Unknown YAML fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// validate enforces: non-empty variables, unique variable keys, unique record
// IDs, declared value keys and finite values.
func (c *Catalog) validate() error {
	if len(c.Variables) == 0 {
		return fmt.Errorf("%w: no variables", ErrInvalidCatalog)
	}

	declared := make(map[string]struct{}, len(c.Variables))
	for i, v := range c.Variables {
		if v.Key == "" {
			return fmt.Errorf("%w: variable %d has empty key", ErrInvalidCatalog, i)
		}
		if _, dup := declared[v.Key]; dup {
			return fmt.Errorf("%w: duplicate variable %q", ErrInvalidCatalog, v.Key)
		}
		declared[v.Key] = struct{}{}
	}

	ids := make(map[string]struct{}, len(c.Records))
	for i, r := range c.Records {
		if r.ID == "" {
			return fmt.Errorf("%w: record %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("%w: duplicate record %q", ErrInvalidCatalog, r.ID)
		}
		ids[r.ID] = struct{}{}

		for k, x := range r.Values {
			if _, ok := declared[k]; !ok {
				return fmt.Errorf("%w: record %q: %w %q", ErrInvalidCatalog, r.ID, ErrUnknownVariable, k)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: record %q: %s is not finite", ErrInvalidCatalog, r.ID, k)
			}
		}
	}

	return nil
}

// Variable returns the declared variable with the given key.
func (c *Catalog) Variable(key string) (Variable, bool) {
	for _, v := range c.Variables {
		if v.Key == key {
			return v, true
		}
	}

	return Variable{}, false
}

// Lookup returns the variables named by keys in the requested order.
// With no keys it returns every declared variable in catalog order.
func (c *Catalog) Lookup(keys ...string) ([]Variable, error) {
	if len(keys) == 0 {
		out := make([]Variable, len(c.Variables))
		copy(out, c.Variables)

		return out, nil
	}

	out := make([]Variable, 0, len(keys))
	for _, k := range keys {
		v, ok := c.Variable(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, k)
		}
		out = append(out, v)
	}

	return out, nil
}
