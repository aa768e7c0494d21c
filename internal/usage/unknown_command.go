package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a command name is not registered.
// Suggestions, if any, are appended as a hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("moray: '%s' is not a moray command. See 'moray commands'.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// DuplicateCommand is returned when a command name is registered twice.
func DuplicateCommand(command string) *Error {
	return &Error{
		Kind:    ErrDuplicateCommand,
		Message: fmt.Sprintf("moray: command '%s' is already registered", command),
	}
}
