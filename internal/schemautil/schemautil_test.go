package schemautil

import "testing"

func TestPrimaryType(t *testing.T) {
	tests := []struct {
		name      string
		typeValue any
		want      string
	}{
		{"string form", "object", "object"},
		{"array form", []any{"string", "null"}, "string"},
		{"array form null first", []any{"null", "integer"}, "integer"},
		{"string slice form", []string{"null", "boolean"}, "boolean"},
		{"nil", nil, ""},
		{"empty array", []any{}, ""},
		{"only null", []any{"null"}, ""},
		{"unexpected shape", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimaryType(tt.typeValue); got != tt.want {
				t.Errorf("PrimaryType(%v) = %q, want %q", tt.typeValue, got, tt.want)
			}
		})
	}
}
