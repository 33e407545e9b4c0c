// Package fatal implements the module's invariant-violation reporting path.
//
// The divisor engine treats malformed input (a negative chip count where an
// effective divisor is required, an out-of-range vertex, an inconsistent
// recursion parameter) as a programmer error, never a recoverable result —
// mirroring the C++ original's use of <cassert>. Idiomatic Go has no
// assert(); this package's Check/Raise panic with a *fatal.Error carrying
// diagnostic context, and callers at a process boundary (the CLI commands)
// recover it with Guard and turn it into a logged exit(1).
//
// Never use this package for ordinary, expected error conditions (a
// malformed input file, an out-of-bounds CLI flag) — those return plain
// errors, as always in Go.
package fatal

import "fmt"

// Error carries the operation and offending value for a tripped invariant.
type Error struct {
	Op    string      // component/function that detected the violation
	Msg   string      // human-readable description of the invariant
	Value interface{} // the offending value, for diagnostics
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (value=%v)", e.Op, e.Msg, e.Value)
}

// Raise panics with a *Error built from op, msg, and value. Used at the
// point an invariant is discovered to be violated.
func Raise(op, msg string, value interface{}) {
	panic(&Error{Op: op, Msg: msg, Value: value})
}

// Check raises unless cond holds. This is this module's assert().
func Check(cond bool, op, msg string, value interface{}) {
	if !cond {
		Raise(op, msg, value)
	}
}

// Guard recovers a panic produced by Raise/Check and reports it through err.
// Any other panic value is re-panicked unchanged. Intended to be deferred
// once, at the top of each CLI command's RunE.
func Guard(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fe, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	*err = fe
}
