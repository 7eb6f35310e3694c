package generator

import "github.com/tsapigen/tsapigen/internal/naming"

// requestTypeName returns the request interface name for an operation,
// e.g. "getItem" -> "GetItemRequest".
func requestTypeName(opID string) string {
	return naming.ToTitleCase(opID) + "Request"
}

// responseTypeName returns the response declaration name for an operation
// and status code. The status code contributes its reason phrase,
// e.g. ("getItem", "200") -> "GetItemResponseOk" and
// ("getItem", "404") -> "GetItemResponseNotFound".
func responseTypeName(opID, status string) string {
	return naming.ToTitleCase(opID) + "Response" + naming.StatusIdentifier(status)
}

// interfaceName returns the exported API interface name,
// e.g. "item service" -> "ItemService".
func interfaceName(apiName string) string {
	name := naming.ToPascalCase(apiName)
	if name == "" {
		return "Api"
	}
	return name
}
