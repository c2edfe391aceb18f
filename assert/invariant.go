package assert

import (
	"fmt"
	"runtime"
)

// Violation is the panic value used when an assertion or invariant fails.
// Recover it and use [errors.As] to inspect the label.
type Violation struct {
	Label    string
	Location string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("assertion '%s' failed at %s", v.Label, v.Location)
}

func newViolation(label string) *Violation {
	return &Violation{Label: label, Location: getCallerDetails(3)}
}

func getCallerDetails(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// Invariant panics with a [*Violation] if ok is false.
// Unlike [True], this is evaluated even when assertions are disabled or removed with the 'noassert' build flag.
// Use it for checks that guard against returning corrupt data.
func Invariant(label string, ok bool) {
	if !ok {
		panic(newViolation(label))
	}
}
