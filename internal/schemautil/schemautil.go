// Package schemautil provides helpers for extracting type information from
// schema nodes.
package schemautil

// PrimaryType extracts the primary type name from a schema "type" value,
// handling both the OAS 3.0 string form and the OAS 3.1+ array form.
// For array-form types the first string entry wins. Returns "" when no type
// is declared or the value has an unexpected shape.
func PrimaryType(typeValue any) string {
	switch t := typeValue.(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	case []string:
		for _, s := range t {
			if s != "null" {
				return s
			}
		}
	}
	return ""
}
