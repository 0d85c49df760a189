package document

import "strings"

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends a reference token to a JSON pointer (RFC 6901).
// The root pointer is the empty string.
func JoinPointer(parent, token string) string {
	return parent + "/" + pointerEscaper.Replace(token)
}
