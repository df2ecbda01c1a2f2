package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrNoJSONObject is returned when a model reply holds no JSON object.
var ErrNoJSONObject = errors.New("no JSON object in model reply")

// ErrMultipleValues is returned when a model reply holds more than one JSON value.
var ErrMultipleValues = errors.New("model reply holds more than one JSON value")

var fenceRe = regexp.MustCompile("```(?:json|JSON)?")

// StripFences removes Markdown code-fence decoration from a model reply.
func StripFences(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
}

// ExtractJSON strips fences and returns the outermost {...} span of the reply.
func ExtractJSON(raw string) (string, error) {
	clean := StripFences(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return clean[start : end+1], nil
}

// Decode parses a model reply into a normalized Record. The reply is
// fence-stripped, sanitized, validated against RecordSchema and only then
// decoded. Dropped values are logged on logger.
func Decode(raw string, logger *slog.Logger) (*Record, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model JSON: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrMultipleValues
	}

	if dropped := Sanitize(m); len(dropped) > 0 {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("schema.decode.sanitize", "dropped", dropped)
	}

	if err := Validate(m); err != nil {
		return nil, err
	}

	clean, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode sanitized record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(clean, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec.Normalize(), nil
}

// Sanitize normalizes the verdict enums in place: values are trimmed and
// upper-cased, and values outside the closed sets are replaced with null.
// It returns a description of every dropped value.
func Sanitize(m map[string]any) []string {
	var dropped []string
	verdict, ok := m[GroupVerdict].(map[string]any)
	if !ok {
		return nil
	}
	enumField := func(key string, allowed []string) {
		raw, present := verdict[key]
		if !present || raw == nil {
			return
		}
		s, isString := raw.(string)
		if !isString {
			verdict[key] = nil
			dropped = append(dropped, GroupVerdict+"."+key+"(type)")
			return
		}
		norm := strings.ToUpper(strings.TrimSpace(s))
		if norm == "" {
			verdict[key] = nil
			return
		}
		if !slices.Contains(allowed, norm) {
			verdict[key] = nil
			dropped = append(dropped, GroupVerdict+"."+key+"("+s+")")
			return
		}
		verdict[key] = norm
	}
	enumField("livello_rischio", RiskLevels)
	enumField("convenienza", AttractivenessSet)
	return dropped
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Validate checks a decoded model reply against RecordSchema.
func Validate(v any) error {
	compileOnce.Do(func() {
		b, err := json.Marshal(RecordSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("record.json")
	})
	if compileErr != nil {
		return compileErr
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("json does not match record schema: %w", err)
	}
	return nil
}

// RecordSchema returns the JSON Schema of a Record as a generic map. Groups are
// objects or null; leaves are scalars, lists of scalars, or null.
func RecordSchema() map[string]any {
	var empty Record
	empty.Normalize()

	props := map[string]any{}
	for _, g := range empty.Groups() {
		groupProps := map[string]any{}
		for _, f := range g.Fields {
			groupProps[f.Key] = leafSchema()
		}
		props[g.Key] = map[string]any{
			"type":       []any{"object", "null"},
			"properties": groupProps,
		}
	}
	for _, f := range empty.TopLevelFields() {
		props[f.Key] = leafSchema()
	}

	verdict := props[GroupVerdict].(map[string]any)["properties"].(map[string]any)
	verdict["livello_rischio"] = enumSchema(RiskLevels)
	verdict["convenienza"] = enumSchema(AttractivenessSet)

	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

func leafSchema() map[string]any {
	scalar := []any{"string", "number", "boolean", "null"}
	return map[string]any{
		"type":  append(slices.Clone(scalar), "array"),
		"items": map[string]any{"type": scalar},
	}
}

func enumSchema(values []string) map[string]any {
	enum := make([]any, 0, len(values)+1)
	for _, v := range values {
		enum = append(enum, v)
	}
	enum = append(enum, nil)
	return map[string]any{"enum": enum}
}
