package participant

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	schemaSession = "session"
	schemaSurvey  = "survey"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("read schema %q: %w", name, err)
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// decodeValid decodes a JSON array, keeping the elements that pass the named
// schema and decode into T. It returns the indexes of rejected elements with
// their errors.
func decodeValid[T any](name string, raw []byte) ([]T, map[int]error, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("parse array: %w", err)
	}

	schema, err := compiledSchema(name)
	if err != nil {
		return nil, nil, err
	}

	out := make([]T, 0, len(items))
	rejected := make(map[int]error)
	for i, item := range items {
		var parsed any
		if err := json.Unmarshal(item, &parsed); err != nil {
			rejected[i] = err
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			rejected[i] = fmt.Errorf("schema validation failed: %w", err)
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			rejected[i] = err
			continue
		}
		out = append(out, v)
	}
	return out, rejected, nil
}
