package dekoda

import "fmt"

// The two failure templates form the module's observable error contract and
// must not drift: callers match logs against them.
const (
	msgNothing         = "Nothing"
	couldNotDecodeTmpl = "Could not decode: '%s'"
)

// CouldNotDecode renders the shared failure template for a token. The token is
// either a property name (a missed path segment) or a type tag in curly braces
// such as {string} or {list} (a leaf type mismatch).
func CouldNotDecode(token string) string {
	return fmt.Sprintf(couldNotDecodeTmpl, token)
}
