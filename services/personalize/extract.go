package personalize

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// fieldKind is the JSON value kind a required field must have.
type fieldKind int

const (
	kindString fieldKind = iota
	kindArray
	kindObject
)

type requiredField struct {
	name string
	kind fieldKind
}

// extractJSONObject returns exactly the first complete top-level JSON object
// in text, found by a balanced-brace scan that tracks string and escape
// state. Prose before the object, prose after it, and any further JSON
// fragments are ignored.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", &ExtractionError{Kind: NoJSONFound}
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	// Opening brace with no matching close.
	return "", &ExtractionError{Kind: MalformedJSON}
}

// parseObject parses the extracted object text into a field map. If strict
// parsing fails it makes one repair attempt before giving up; models
// occasionally emit trailing commas or single quotes that repair recovers.
func parseObject(objText string) (string, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(objText), &fields); err == nil {
		return objText, fields, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(objText)
	if repairErr != nil {
		return "", nil, &ExtractionError{Kind: MalformedJSON, Err: repairErr}
	}
	if err := json.Unmarshal([]byte(repaired), &fields); err != nil {
		return "", nil, &ExtractionError{Kind: MalformedJSON, Err: err}
	}
	return repaired, fields, nil
}

func kindOf(raw json.RawMessage) (fieldKind, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return 0, false
	}
	switch trimmed[0] {
	case '"':
		return kindString, true
	case '[':
		return kindArray, true
	case '{':
		return kindObject, true
	default:
		return 0, false
	}
}

// checkContract verifies that every declared field is present with the
// expected kind. A field of the wrong kind counts as missing; the caller can
// not use it either way.
func checkContract(fields map[string]json.RawMessage, contract []requiredField) error {
	for _, req := range contract {
		raw, ok := fields[req.name]
		if !ok {
			return &ExtractionError{Kind: MissingField, Field: req.name}
		}
		kind, ok := kindOf(raw)
		if !ok || kind != req.kind {
			return &ExtractionError{Kind: MissingField, Field: req.name}
		}
	}
	return nil
}

// extractInto runs the full pipeline: scan out the first object, parse it,
// check the shape contract, and decode into the use case's result type.
func extractInto[T any](raw string, contract []requiredField) (*T, error) {
	objText, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	objText, fields, err := parseObject(objText)
	if err != nil {
		return nil, err
	}

	if err := checkContract(fields, contract); err != nil {
		return nil, err
	}

	result := new(T)
	if err := json.Unmarshal([]byte(objText), result); err != nil {
		return nil, &ExtractionError{Kind: MalformedJSON, Err: err}
	}
	return result, nil
}
