package autodiff

import "fmt"

// UnsupportedOperandError reports an operand that cannot participate in an
// operation, such as a Value owned by a different Graph. Operations panic
// with it at the offending call site; nothing is deferred to backward time.
type UnsupportedOperandError struct {
	Op     string // operator label, e.g. "+" or "*"
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("autodiff: unsupported operand for %q: %s", e.Op, e.Reason)
}
