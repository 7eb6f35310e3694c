package naming

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusIdentifier converts an HTTP status code string to an identifier
// fragment derived from the code's reason phrase.
//
// The reason phrase is lowercased, title-cased word by word, and stripped of
// non-alphanumeric characters:
//
//	"200" -> "Ok"        (reason phrase "OK")
//	"404" -> "NotFound"  (reason phrase "Not Found")
//	"418" -> "ImATeapot" (reason phrase "I'm a teapot")
//
// Codes without a registered reason phrase fall back to "Status" plus the
// code itself, e.g. "299" -> "Status299".
func StatusIdentifier(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return "Status" + ToPascalCase(code)
	}

	text := http.StatusText(n)
	if text == "" {
		return "Status" + code
	}

	// Lowercase first so all-caps phrases like "OK" title-case to "Ok".
	titled := cases.Title(language.English).String(strings.ToLower(text))

	var result strings.Builder
	for _, r := range titled {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
