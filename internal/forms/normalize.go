package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalRecord is the normalized, schema-independent view of a form's
// field values. Values are string, int64, float64, []string or nil (the
// explicit "no value" marker).
type CanonicalRecord map[string]any

// Normalize maps raw form values onto a canonical record for the given
// schema. Pure function, no I/O.
//
// Rules:
//   - an empty string becomes nil, so "user left blank" is distinguishable
//     from meaningful values like "0" or "false" (string check, not a falsy
//     check);
//   - fields the schema marks as integer or decimal are parsed; a parse
//     failure yields nil unless the field is required, in which case the
//     whole call fails;
//   - every field the schema projects is present in the result, as nil when
//     the input omitted it, so projection never indexes a missing key;
//   - unknown input fields are carried through untouched.
func Normalize(raw map[string][]string, entry *SchemaEntry) (CanonicalRecord, error) {
	rec := make(CanonicalRecord, len(raw)+len(entry.Columns))

	for field, values := range raw {
		v := ""
		if len(values) > 0 {
			v = values[0]
		}
		normalized, err := normalizeValue(entry, field, v)
		if err != nil {
			return nil, err
		}
		rec[field] = normalized
	}

	// Schema fields absent from the input surface as explicit no-values.
	for _, col := range entry.Columns {
		if col.Field == "" {
			continue
		}
		if _, ok := rec[col.Field]; !ok {
			rec[col.Field] = nil
		}
	}

	return rec, nil
}

func normalizeValue(entry *SchemaEntry, field, v string) (any, error) {
	if v == "" {
		return nil, nil
	}

	switch entry.valueKind(field) {
	case ValueInt:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			if entry.fieldRequired(field) {
				return nil, fmt.Errorf("field %q: %q is not an integer", field, v)
			}
			return nil, nil
		}
		return n, nil
	case ValueDecimal:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			if entry.fieldRequired(field) {
				return nil, fmt.Errorf("field %q: %q is not a number", field, v)
			}
			return nil, nil
		}
		return f, nil
	default:
		return v, nil
	}
}

// MissingRequired lists required fields that normalized to no-value.
func MissingRequired(rec CanonicalRecord, entry *SchemaEntry) []string {
	var missing []string
	for _, col := range entry.Columns {
		if !col.Required || col.Field == "" {
			continue
		}
		if rec[col.Field] == nil {
			missing = append(missing, col.Field)
		}
	}
	return missing
}
