// Package errorutil provides error helpers shared across the module.
package errorutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// JoinList combines errs into a single error whose message is the
// concatenation of the non-nil errors' messages separated by sep, in the
// order given. It returns nil if errs contains no non-nil error, and the
// error itself if it contains exactly one.
func JoinList(sep string, errs ...error) error {
	list := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			list = append(list, err)
		}
	}
	if len(list) == 0 {
		return nil
	}
	if len(list) == 1 {
		return list[0] //errtrace:skip
	}
	return &listError{sep: sep, errs: list} //errtrace:skip
}

type listError struct {
	sep  string
	errs []error
}

func (e *listError) Error() string {
	var sb strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			sb.WriteString(e.sep)
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *listError) Unwrap() []error { return e.errs }
