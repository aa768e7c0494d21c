package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrDuplicateCommand
	ErrUnknownFlag
	ErrMissingFlag
	ErrMissingFlagValue
	ErrMissingArgument
	ErrTooManyArguments
	ErrInvalidConfigKey
	ErrFailedConfigPath
	ErrCatalog
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Duplicate command registration
//	  - Invalid config key
//	  - Failed config path
//	  - Catalog store errors
//
//	Exit 2: User input errors
//	  - Unknown flag
//	  - Missing required flag
//	  - Flag missing its value
//	  - Missing required argument
//	  - Too many arguments
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownCommand:   1,
	ErrDuplicateCommand: 1,
	ErrUnknownFlag:      2,
	ErrMissingFlag:      2,
	ErrMissingFlagValue: 2,
	ErrMissingArgument:  2,
	ErrTooManyArguments: 2,
	ErrInvalidConfigKey: 1,
	ErrFailedConfigPath: 1,
	ErrCatalog:          1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is
// derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
