package strslice

import "fmt"

// ContractError is the panic value raised by a precondition violation when
// the package is built with the rawtextdebug tag.
type ContractError struct {
	Op    string
	Index int
	Len   int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("strslice: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func violate(op string, index, n int) {
	panic(&ContractError{Op: op, Index: index, Len: n})
}
