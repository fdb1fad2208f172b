package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies catalog failures.
type Kind int

const (
	// KindNotFound means the record file is missing or cannot be opened.
	KindNotFound Kind = iota + 1
	// KindMalformed means the record file could not be decoded.
	KindMalformed
	// KindInvalid means the record decoded but breaks a model invariant.
	KindInvalid
	// KindEmpty means the collection holds no records.
	KindEmpty
	// KindBadFilename means a record file has no usable stem.
	KindBadFilename
)

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrNotFound    = errors.New("the requested constellation does not exist or is not readable")
	ErrMalformed   = errors.New("the constellation record could not be parsed")
	ErrInvalid     = errors.New("the constellation record contains invalid star data")
	ErrEmpty       = errors.New("the constellations directory is empty")
	ErrBadFilename = errors.New("unexpected record file name")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindMalformed:
		return ErrMalformed
	case KindInvalid:
		return ErrInvalid
	case KindEmpty:
		return ErrEmpty
	case KindBadFilename:
		return ErrBadFilename
	}
	return nil
}

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	case KindInvalid:
		return "invalid"
	case KindEmpty:
		return "empty"
	case KindBadFilename:
		return "bad filename"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every Catalog operation that fails.
type Error struct {
	Kind Kind
	// Name is the record stem involved, if any.
	Name string
	// Path is the file or directory involved.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	msg := "catalog error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Name != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Name)
	} else if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the Kind of err, or 0 when err is not a catalog error.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return 0
}
