package shardsearch

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Searchable record fields, in the order they are checked.
const (
	FieldName    = "Name"
	FieldNumber  = "Number"
	FieldCarrier = "Carrier"
	FieldAddress = "Address"
	FieldEmail   = "Email"
)

// SearchableFields lists the record fields a query is matched against.
var SearchableFields = []string{FieldName, FieldNumber, FieldCarrier, FieldAddress, FieldEmail}

// Record is a single entry decoded from a shard's JSON array.
// Records are treated as read-only once decoded.
type Record map[string]any

// Field returns the string form of the named field.
// The second return value is false when the field is absent or JSON null.
func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// FieldOr returns the named field, or def when it is absent.
func (r Record) FieldOr(name, def string) string {
	if s, ok := r.Field(name); ok {
		return s
	}
	return def
}

// NormalizeQuery lower-cases a raw search term and strips surrounding whitespace.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches reports whether the normalized query is a substring of any
// searchable field of the record, compared case-insensitively.
//
// Absent fields compare as the empty string, so they only match an empty
// query. An empty query matches every record.
func Matches(r Record, normalizedQuery string) bool {
	for _, name := range SearchableFields {
		v, _ := r.Field(name)
		if strings.Contains(strings.ToLower(v), normalizedQuery) {
			return true
		}
	}
	return false
}

// FilterRecords returns the records that match the normalized query,
// preserving their order.
func FilterRecords(records []Record, normalizedQuery string) []Record {
	var matched []Record
	for _, r := range records {
		if Matches(r, normalizedQuery) {
			matched = append(matched, r)
		}
	}
	return matched
}
