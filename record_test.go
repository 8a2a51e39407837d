package shardsearch_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/shardsearch"
	"github.com/stretchr/testify/assert"
)

func TestRecord_Field(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record shardsearch.Record
		field  string
		want   string
		wantOK bool
	}{
		{"string", shardsearch.Record{"Name": "Bob"}, "Name", "Bob", true},
		{"json number", shardsearch.Record{"Number": json.Number("5550100")}, "Number", "5550100", true},
		{"float", shardsearch.Record{"Number": float64(555)}, "Number", "555", true},
		{"bool", shardsearch.Record{"Carrier": true}, "Carrier", "true", true},
		{"absent", shardsearch.Record{"Name": "Bob"}, "Email", "", false},
		{"null", shardsearch.Record{"Email": nil}, "Email", "", false},
		{"nested", shardsearch.Record{"Address": map[string]any{"city": "Oslo"}}, "Address", `{"city":"Oslo"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.record.Field(tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_FieldOr(t *testing.T) {
	t.Parallel()

	r := shardsearch.Record{"Name": "Bob"}

	assert.Equal(t, "Bob", r.FieldOr("Name", "N/A"))
	assert.Equal(t, "N/A", r.FieldOr("Email", "N/A"))
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice", shardsearch.NormalizeQuery(" Alice "))
	assert.Equal(t, "alice", shardsearch.NormalizeQuery("alice"))
	assert.Equal(t, "", shardsearch.NormalizeQuery(" \t\n"))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("matches substring of name", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Name": "Alice Smith"}

		assert.True(t, shardsearch.Matches(r, "ice sm"))
		assert.False(t, shardsearch.Matches(r, "icesm"))
	})

	t.Run("compares case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Email": "Bob@Example.COM"}

		assert.True(t, shardsearch.Matches(r, "bob@example.com"))
	})

	t.Run("matches any searchable field", func(t *testing.T) {
		t.Parallel()

		for _, field := range shardsearch.SearchableFields {
			r := shardsearch.Record{field: "needle"}
			assert.True(t, shardsearch.Matches(r, "needle"), field)
		}
	})

	t.Run("matches numeric field", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Number": json.Number("5550100")}

		assert.True(t, shardsearch.Matches(r, "5550"))
	})

	t.Run("ignores non-searchable fields", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Name": "Bob", "Notes": "needle"}

		assert.False(t, shardsearch.Matches(r, "needle"))
	})

	t.Run("missing email never matches on email", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Name": "Bob"}

		assert.False(t, shardsearch.Matches(r, "b@x.com"))
	})

	t.Run("empty query matches record with any present field", func(t *testing.T) {
		t.Parallel()

		assert.True(t, shardsearch.Matches(shardsearch.Record{"Carrier": ""}, ""))
		assert.True(t, shardsearch.Matches(shardsearch.Record{"Name": "Bob"}, ""))
	})

	t.Run("empty query matches record without searchable fields", func(t *testing.T) {
		t.Parallel()

		assert.True(t, shardsearch.Matches(shardsearch.Record{}, ""))
		assert.True(t, shardsearch.Matches(shardsearch.Record{"Other": "x"}, ""))
		assert.True(t, shardsearch.Matches(shardsearch.Record{"Email": nil}, ""))
	})

	t.Run("absent fields never match a non-empty query", func(t *testing.T) {
		t.Parallel()

		assert.False(t, shardsearch.Matches(shardsearch.Record{}, "a"))
		assert.False(t, shardsearch.Matches(shardsearch.Record{"Other": "x"}, "x"))
	})

	t.Run("does not mutate record", func(t *testing.T) {
		t.Parallel()

		r := shardsearch.Record{"Name": "Alice"}
		shardsearch.Matches(r, "alice")

		assert.Equal(t, shardsearch.Record{"Name": "Alice"}, r)
	})
}

func TestFilterRecords(t *testing.T) {
	t.Parallel()

	records := []shardsearch.Record{
		{"Name": "Bob"},
		{"Name": "Alice"},
		{"Name": "Bobby"},
	}

	got := shardsearch.FilterRecords(records, "bob")

	assert.Equal(t, []shardsearch.Record{{"Name": "Bob"}, {"Name": "Bobby"}}, got)
	assert.Empty(t, shardsearch.FilterRecords(records, "zed"))
}
