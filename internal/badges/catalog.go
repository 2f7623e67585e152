package badges

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	//go:embed catalog.json
	catalogRawJSON []byte

	//go:embed catalog_schema.json
	catalogSchemaJSON []byte
)

var (
	catalogOnce sync.Once
	catalog     []Badge
	catalogErr  error
)

// Catalog returns the badge definitions in catalog order. The embedded
// JSON is validated against its schema on first use; a malformed catalog
// is a build defect, so the error is returned rather than swallowed.
func Catalog() ([]Badge, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = loadCatalog()
	})
	return catalog, catalogErr
}

// MustCatalog is Catalog for callers where an invalid embedded catalog
// is unrecoverable (program startup).
func MustCatalog() []Badge {
	c, err := Catalog()
	if err != nil {
		panic(err)
	}
	return c
}

func loadCatalog() ([]Badge, error) {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("badges://catalog_schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("badges://catalog_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogRawJSON))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var parsed struct {
		Badges []Badge `json:"badges"`
	}
	if err := json.Unmarshal(catalogRawJSON, &parsed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(parsed.Badges))
	for _, b := range parsed.Badges {
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	return parsed.Badges, nil
}
