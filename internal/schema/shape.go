// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

// RawTextKey is the auxiliary top-level key holding the verbatim RFP text.
const RawTextKey = "raw_rfp_text"

const shapeResource = "rfp-shape.json"

// ErrShapeMismatch is returned when a payload is not structurally
// assignable to the template it was built from.
var ErrShapeMismatch = errors.New("payload does not match schema template shape")

// ShapeIssue is one location where a payload departs from the template shape.
type ShapeIssue struct {
	Location string
	Message  string
}

// ShapeError lists every shape issue found in a payload.
type ShapeError struct {
	Issues []ShapeIssue
}

func (e *ShapeError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		loc := issue.Location
		if loc == "" {
			loc = "#"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", loc, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrShapeMismatch, strings.Join(parts, "; "))
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// ShapeSchema derives a JSON Schema from the template's JSON form. Every
// object requires exactly the keys the template declares, each with the
// template's JSON type. The root also requires RawTextKey as a string.
// Keys whose template value is null are required but left untyped.
func (t *Template) ShapeSchema() (map[string]any, error) {
	tree, err := t.JSON()
	if err != nil {
		return nil, err
	}
	root := shapeOf(tree)
	props := root["properties"].(map[string]any)
	props[RawTextKey] = map[string]any{"type": "string"}
	root["required"] = append(root["required"].([]string), RawTextKey)
	root["$schema"] = "https://json-schema.org/draft/2020-12/schema"
	return root, nil
}

func shapeOf(v any) map[string]any {
	switch typed := v.(type) {
	case map[string]any:
		props := make(map[string]any, len(typed))
		required := make([]string, 0, len(typed))
		for k, child := range typed {
			props[k] = shapeOf(child)
			required = append(required, k)
		}
		sort.Strings(required)
		return map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		}
	case []any:
		return map[string]any{"type": "array"}
	case string:
		return map[string]any{"type": "string"}
	case float64:
		return map[string]any{"type": "number"}
	case bool:
		return map[string]any{"type": "boolean"}
	default:
		return map[string]any{}
	}
}

// CheckShape validates the JSON form of p against the template's shape
// schema. It returns a *ShapeError wrapping ErrShapeMismatch on failure.
func (t *Template) CheckShape(p *types.Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding payload JSON: %w", err)
	}
	return t.checkDocument(doc)
}

func (t *Template) checkDocument(doc any) error {
	compiled, err := t.compileShape()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ShapeError{Issues: collectIssues(verr)}
		}
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return nil
}

func (t *Template) compileShape() (*jsonschema.Schema, error) {
	shape, err := t.ShapeSchema()
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(shape)
	if err != nil {
		return nil, fmt.Errorf("marshaling shape schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(shapeResource, bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("adding shape schema: %w", err)
	}
	compiled, err := compiler.Compile(shapeResource)
	if err != nil {
		return nil, fmt.Errorf("compiling shape schema: %w", err)
	}
	return compiled, nil
}

func collectIssues(err *jsonschema.ValidationError) []ShapeIssue {
	var issues []ShapeIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			issues = append(issues, ShapeIssue{
				Location: node.InstanceLocation,
				Message:  node.Message,
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
