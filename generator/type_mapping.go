package generator

// tsPrimitive maps an OpenAPI schema type name to the TypeScript primitive
// used in emitted declarations. OpenAPI distinguishes integer from number;
// TypeScript does not, so both map to number.
//
// The second result is false when the type has no primitive mapping and the
// universal any type was returned instead. Missing and unrecognized types
// both take this permissive fallback so a sloppy document still yields a
// usable (if weakly typed) client.
func tsPrimitive(schemaType string) (string, bool) {
	switch schemaType {
	case "string":
		return "string", true
	case "integer", "number":
		return "number", true
	case "boolean":
		return "boolean", true
	default:
		return "any", false
	}
}
