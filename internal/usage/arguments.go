package usage

import "fmt"

// MissingArgument is returned when a required positional is not provided.
func MissingArgument(command, arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("moray: '%s' requires the argument '%s'", command, arg),
	}
}

// TooManyArguments is returned when positional tokens remain after the fixed
// list is bound and the command declares no rest catch-all.
func TooManyArguments(command, first string) *Error {
	return &Error{
		Kind:    ErrTooManyArguments,
		Message: fmt.Sprintf("moray: '%s' does not accept the argument '%s'", command, first),
	}
}
