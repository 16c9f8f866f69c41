package forms

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"projectmart_backend/internal/assets"
)

// ValueKind selects the coercion applied to a form field.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueInt
	ValueDecimal
)

// ColumnSpec binds one table column to its source: either a form field or a
// file field. The column order of a SchemaEntry IS the projection order.
type ColumnSpec struct {
	Name string // column name in the target table

	Field string // form field supplying the value (exclusive with File)
	File  string // file field supplying attachment references
	Multi bool   // file column stores a JSON array of stored names

	Kind       ValueKind
	Required   bool
	Searchable bool // participates in substring search on the read path
}

// FileField declares an attachment slot of a submission kind.
type FileField struct {
	Name     string
	MaxCount int
}

// SchemaEntry describes one submission kind: target table, ordered columns
// and how a canonical record plus asset references project onto them.
type SchemaEntry struct {
	Kind      string
	Table     string
	Columns   []ColumnSpec
	ReturnsID bool // INSERT returns the generated id to the caller

	// NotifyEmail marks kinds whose successful submission fans out a
	// notification mail (contact form).
	NotifyEmail bool
}

// ColumnNames returns the ordered column list.
func (e *SchemaEntry) ColumnNames() []string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = c.Name
	}
	return names
}

// FileFields returns the declared attachment slots in column order.
func (e *SchemaEntry) FileFields() []FileField {
	var ff []FileField
	for _, c := range e.Columns {
		if c.File == "" {
			continue
		}
		max := 1
		if c.Multi {
			max = 10
		}
		ff = append(ff, FileField{Name: c.File, MaxCount: max})
	}
	return ff
}

// HasFileFields reports whether the kind accepts attachments.
func (e *SchemaEntry) HasFileFields() bool {
	for _, c := range e.Columns {
		if c.File != "" {
			return true
		}
	}
	return false
}

// SearchColumns returns the columns substring search matches against.
func (e *SchemaEntry) SearchColumns() []string {
	var cols []string
	for _, c := range e.Columns {
		if c.Searchable {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

func (e *SchemaEntry) valueKind(field string) ValueKind {
	for _, c := range e.Columns {
		if c.Field == field {
			return c.Kind
		}
	}
	return ValueText
}

func (e *SchemaEntry) fieldRequired(field string) bool {
	for _, c := range e.Columns {
		if c.Field == field && c.Required {
			return true
		}
	}
	return false
}

// Project builds the positional value list for the INSERT, aligned 1:1 with
// Columns. File columns resolve to a stored name (single) or a JSON-encoded
// array of stored names (multi); absent attachments become nil / "[]".
func (e *SchemaEntry) Project(rec CanonicalRecord, filesByField map[string][]assets.Reference) []any {
	values := make([]any, 0, len(e.Columns))

	for _, col := range e.Columns {
		if col.File != "" {
			refs := filesByField[col.File]
			if col.Multi {
				values = append(values, storedNamesJSON(refs))
			} else if len(refs) > 0 {
				values = append(values, refs[0].StoredName)
			} else {
				values = append(values, nil)
			}
			continue
		}
		values = append(values, rec[col.Field])
	}

	return values
}

func storedNamesJSON(refs []assets.Reference) string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.StoredName
	}
	b, _ := json.Marshal(names)
	return string(b)
}

// CreateTableSQL emits the DDL for the kind's table, columns in projection
// order, with a serial id and a created_at timestamp.
func (e *SchemaEntry) CreateTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", e.Table)
	b.WriteString("    id SERIAL PRIMARY KEY,\n")
	for _, col := range e.Columns {
		fmt.Fprintf(&b, "    %s %s,\n", col.Name, col.sqlType())
	}
	b.WriteString("    created_at TIMESTAMPTZ NOT NULL DEFAULT now()\n)")
	return b.String()
}

func (c ColumnSpec) sqlType() string {
	switch {
	case c.File != "" && c.Multi:
		return "JSONB"
	case c.Kind == ValueInt:
		return "INTEGER"
	case c.Kind == ValueDecimal:
		return "NUMERIC(12,2)"
	default:
		return "TEXT"
	}
}

// Registry is the immutable kind → schema table. Built once at startup.
type Registry struct {
	entries map[string]*SchemaEntry
}

// NewRegistry indexes the given entries. Duplicate kinds are a programming
// error and fail construction.
func NewRegistry(entries []*SchemaEntry) (*Registry, error) {
	m := make(map[string]*SchemaEntry, len(entries))
	for _, e := range entries {
		if _, dup := m[e.Kind]; dup {
			return nil, fmt.Errorf("duplicate submission kind %q", e.Kind)
		}
		m[e.Kind] = e
	}
	return &Registry{entries: m}, nil
}

// Resolve returns the schema for a kind, or false when unregistered.
func (r *Registry) Resolve(kind string) (*SchemaEntry, bool) {
	e, ok := r.entries[kind]
	return e, ok
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate self-checks every entry: the projector must emit exactly one value
// per column for a representative record. A misaligned values list corrupts
// unrelated columns silently, so a failure here must keep the process from
// serving traffic.
func (r *Registry) Validate() error {
	for kind, entry := range r.entries {
		rec, err := Normalize(map[string][]string{}, entry)
		if err != nil {
			return fmt.Errorf("kind %q: normalize self-check: %w", kind, err)
		}
		values := entry.Project(rec, map[string][]assets.Reference{})
		if len(values) != len(entry.Columns) {
			return fmt.Errorf("kind %q: projector emitted %d values for %d columns",
				kind, len(values), len(entry.Columns))
		}
		for _, col := range entry.Columns {
			if col.Field == "" && col.File == "" {
				return fmt.Errorf("kind %q: column %q has no source", kind, col.Name)
			}
			if col.Field != "" && col.File != "" {
				return fmt.Errorf("kind %q: column %q has two sources", kind, col.Name)
			}
		}
	}
	return nil
}
