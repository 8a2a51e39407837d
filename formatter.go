package shardsearch

import (
	"fmt"
	"strings"
)

// MissingField is displayed in place of an absent record field.
const MissingField = "N/A"

// FormatRecords formats matched records for terminal display.
// Each record lists the searchable fields, with absent fields shown as N/A.
// Records are separated by blank lines.
func FormatRecords(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for i, r := range records {
		var b strings.Builder
		fmt.Fprintf(&b, "Result %d:", i+1)
		for _, name := range SearchableFields {
			fmt.Fprintf(&b, "\n  %-8s %s", name+":", r.FieldOr(name, MissingField))
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
