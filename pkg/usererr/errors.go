package usererr

// Representation of errors surfaced to the person running the tool.
// These are divided into a small number of categories, essentially
// distinguished by whose fault the error is; i.e., is this error:
//  - a bug, or an environmental problem (the tool's fault); or,
//  - not going to work until the user fixes their input, e.g., a
//    fragment file or configuration?
type Error struct {
	Type Type
	// a message that can be printed out for the user
	Help string
	// the underlying error, for developers to look at
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Cause makes the underlying error available to pkg/errors.Cause.
func (e *Error) Cause() error {
	return e.Err
}

type Type string

const (
	// The operation looked fine on paper, but something went wrong
	Server Type = "server"
	// The operation was well-formed, but the input means it can't
	// succeed (e.g., a malformed fragment file)
	User = "user"
)

func IsUser(err error) bool {
	if err, ok := err.(*Error); ok && err.Type == User {
		return true
	}
	return false
}

// New wraps an error as a user error, with some help text.
func New(err error, help string) *Error {
	return &Error{
		Type: User,
		Err:  err,
		Help: help,
	}
}
