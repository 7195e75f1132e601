package catalog

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML (or JSON) catalog from r and validates it.
// Unknown fields are rejected so that typos do not silently drop data.
func Decode(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, errors.Wrap(ErrInvalidCatalog, "empty document")
		}
		return Catalog{}, errors.Wrap(err, "decode catalog")
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

// Load reads and validates the catalog stored at path.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "read catalog %s", path)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "load catalog %s", path)
	}

	return c, nil
}

// Encode writes c as YAML.
func Encode(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode catalog")
	}

	return errors.Wrap(enc.Close(), "flush catalog")
}
