package forms

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() *SchemaEntry {
	return &SchemaEntry{
		Kind:  "test-kind",
		Table: "test_kind",
		Columns: []ColumnSpec{
			{Name: "title", Field: "title", Required: true},
			{Name: "min_price", Field: "minPrice", Kind: ValueDecimal},
			{Name: "member_count", Field: "memberCount", Kind: ValueInt},
			{Name: "notes", Field: "notes"},
		},
	}
}

func TestNormalizeEmptyStringBecomesNil(t *testing.T) {
	rec, err := Normalize(map[string][]string{
		"title": {"My Project"},
		"notes": {""},
	}, testEntry())
	require.NoError(t, err)

	assert.Equal(t, "My Project", rec["title"])
	assert.Nil(t, rec["notes"])
}

func TestNormalizeZeroIsNotBlank(t *testing.T) {
	rec, err := Normalize(map[string][]string{
		"title":       {"x"},
		"minPrice":    {"0"},
		"memberCount": {"0"},
	}, testEntry())
	require.NoError(t, err)

	// "0" carries meaning; only the empty string maps to nil.
	assert.Equal(t, float64(0), rec["minPrice"])
	assert.Equal(t, int64(0), rec["memberCount"])
}

func TestNormalizeNumericParsing(t *testing.T) {
	rec, err := Normalize(map[string][]string{
		"title":       {"x"},
		"minPrice":    {" 199.50 "},
		"memberCount": {"4"},
	}, testEntry())
	require.NoError(t, err)

	assert.Equal(t, 199.50, rec["minPrice"])
	assert.Equal(t, int64(4), rec["memberCount"])
}

func TestNormalizeUnparsableOptionalNumberBecomesNil(t *testing.T) {
	rec, err := Normalize(map[string][]string{
		"title":    {"x"},
		"minPrice": {"cheap"},
	}, testEntry())
	require.NoError(t, err)

	assert.Nil(t, rec["minPrice"])
}

func TestNormalizeUnparsableRequiredNumberFails(t *testing.T) {
	entry := testEntry()
	entry.Columns[1].Required = true

	_, err := Normalize(map[string][]string{
		"title":    {"x"},
		"minPrice": {"cheap"},
	}, entry)
	assert.Error(t, err)
}

func TestNormalizeAbsentSchemaFieldsArePresentAsNil(t *testing.T) {
	rec, err := Normalize(map[string][]string{"title": {"x"}}, testEntry())
	require.NoError(t, err)

	for _, field := range []string{"minPrice", "memberCount", "notes"} {
		v, ok := rec[field]
		assert.True(t, ok, "field %s should be present", field)
		assert.Nil(t, v)
	}
}

func TestNormalizeUnknownFieldsCarriedThrough(t *testing.T) {
	rec, err := Normalize(map[string][]string{
		"title":  {"x"},
		"extras": {"kept"},
	}, testEntry())
	require.NoError(t, err)

	assert.Equal(t, "kept", rec["extras"])
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := map[string][]string{
		"title":       {"My Project"},
		"minPrice":    {"10.5"},
		"memberCount": {"3"},
		"notes":       {""},
	}
	entry := testEntry()

	first, err := Normalize(raw, entry)
	require.NoError(t, err)

	// Re-normalizing the stringified first pass must not change anything.
	again := make(map[string][]string, len(first))
	for k, v := range first {
		if v == nil {
			continue
		}
		again[k] = []string{stringify(v)}
	}
	second, err := Normalize(again, entry)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

func TestMissingRequired(t *testing.T) {
	entry := testEntry()

	rec, err := Normalize(map[string][]string{"notes": {"hi"}}, entry)
	require.NoError(t, err)

	assert.Equal(t, []string{"title"}, MissingRequired(rec, entry))

	rec["title"] = "set"
	assert.Empty(t, MissingRequired(rec, entry))
}
