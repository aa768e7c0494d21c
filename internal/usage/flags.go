package usage

import "fmt"

// UnknownFlag is returned when a command does not declare the given flag.
func UnknownFlag(command, flag string) *Error {
	return &Error{
		Kind:    ErrUnknownFlag,
		Message: fmt.Sprintf("moray: '%s' does not recognize the flag '--%s'. See 'moray describe %s'.", command, flag, command),
	}
}

// MissingFlag is returned when a mandatory flag is not provided.
func MissingFlag(command, flag string) *Error {
	return &Error{
		Kind:    ErrMissingFlag,
		Message: fmt.Sprintf("moray: '%s' requires the flag '--%s'", command, flag),
	}
}

// MissingFlagValue is returned when a flag that carries an argument is
// supplied without one.
func MissingFlagValue(command, flag, hint string) *Error {
	return &Error{
		Kind:    ErrMissingFlagValue,
		Message: fmt.Sprintf("moray: '--%s' requires a value %s", flag, hint),
	}
}

// UnexpectedFlagValue is returned when a switch is supplied with a value.
func UnexpectedFlagValue(command, flag string) *Error {
	return &Error{
		Kind:    ErrUnknownFlag,
		Message: fmt.Sprintf("moray: '--%s' does not take a value", flag),
	}
}
