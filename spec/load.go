package spec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	bgerrors "github.com/scriptkit/bridgegen/errors"
)

// File is the on-disk specification document: one or more domains.
// YAML and JSON are both accepted (JSON is a YAML subset).
type File struct {
	Domains []Domain `json:"domains" yaml:"domains" jsonschema:"minItems=1"`
}

// Load reads a specification document and returns its validated domains
// in declared order.
func Load(r io.Reader) ([]Domain, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode specification: %w", err)
	}
	if len(f.Domains) == 0 {
		return nil, fmt.Errorf("specification declares no domains")
	}
	// Domain names are the batch's unique key; two domains with the same
	// name would race for one output location.
	seen := make(map[string]bool, len(f.Domains))
	for _, d := range f.Domains {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Name] {
			return nil, bgerrors.InvalidDomain(d.Name, "domain %q declared more than once", d.Name)
		}
		seen[d.Name] = true
	}
	return f.Domains, nil
}

// LoadFile reads and validates a specification file.
func LoadFile(path string) ([]Domain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bgerrors.InvalidSpec(path, err)
	}
	defer f.Close()

	domains, err := Load(f)
	if err != nil {
		if _, ok := err.(*bgerrors.Error); ok {
			return nil, err
		}
		return nil, bgerrors.InvalidSpec(path, err)
	}
	return domains, nil
}

// FileSchema returns the JSON schema (Draft 2020-12) describing the
// specification file format, for editor tooling and documentation.
func FileSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&File{})
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return out, nil
}
