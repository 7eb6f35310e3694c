package httputil

import "testing"

func TestIsMethod(t *testing.T) {
	for _, m := range Methods {
		if !IsMethod(m) {
			t.Errorf("IsMethod(%q) = false, want true", m)
		}
	}
	for _, k := range []string{"GET", "parameters", "summary", "x-custom", ""} {
		if IsMethod(k) {
			t.Errorf("IsMethod(%q) = true, want false", k)
		}
	}
}

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"200", true},
		{"204", true},
		{"404", true},
		{"599", true},
		{"default", true},
		{"x-custom", true},
		{"2XX", true},
		{"5XX", true},
		{"6XX", false},
		{"0XX", false},
		{"600", false},
		{"99", false},
		{"20", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateStatusCode(tt.code); got != tt.want {
			t.Errorf("ValidateStatusCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsSuccessStatus(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"200", true},
		{"201", true},
		{"204", true},
		{"2XX", true},
		{"304", false},
		{"404", false},
		{"default", false},
	}

	for _, tt := range tests {
		if got := IsSuccessStatus(tt.code); got != tt.want {
			t.Errorf("IsSuccessStatus(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsJSONMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/jsonlines", true},
		{"text/plain", false},
		{"application/xml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsJSONMediaType(tt.mediaType); got != tt.want {
			t.Errorf("IsJSONMediaType(%q) = %v, want %v", tt.mediaType, got, tt.want)
		}
	}
}
