package deduction

import "fmt"

// InvalidInputError reports a day input that cannot be computed: a half
// marked present is missing its recorded time.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid attendance input: %s: %s", e.Field, e.Reason)
}
