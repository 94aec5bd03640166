// Package errors provides error wrapping with slog annotations and source locations.
//
// It re-exports the parts of the standard errors package that the rest of the
// codebase needs so that call sites only ever import one errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, optional slog attributes, and the source
// location of the wrap call.
type annotatedError struct {
	cause  error
	msg    string
	attrs  []slog.Attr
	source string
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates a new sentinel error. Use it for package-level error
// values that callers match with Is.
func NewSentinel(msg string) error {
	return &annotatedError{
		cause:  nil,
		msg:    msg,
		attrs:  nil,
		source: "",
	}
}

// New mirrors errors.New from the standard library.
func New(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message, optional slog attributes, and the
// caller's source location. A nil err is tolerated so that callers don't have
// to guard against it.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		cause:  err,
		msg:    msg,
		attrs:  attrs,
		source: caller(2), //nolint:mnd // skip runtime.Caller and Wrap.
	}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the recovery site.
func DecoratePanic(recovered any) error {
	return &annotatedError{
		cause:  nil,
		msg:    fmt.Sprintf("panic: %v", recovered),
		attrs:  nil,
		source: caller(2), //nolint:mnd // skip runtime.Caller and DecoratePanic.
	}
}

// caller returns the file:line of the caller after skipping the given number
// of frames. Frames inside this package are skipped so that the reported
// location is always the call site.
func caller(skip int) string {
	pcs := make([]uintptr, 16) //nolint:mnd // enough frames for any wrap chain.
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File == "" {
			return ""
		}
		if !strings.HasSuffix(frame.File, "annotatederror.go") &&
			!strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", trimPath(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// trimPath shortens an absolute file path to its last two elements.
func trimPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 2 { //nolint:mnd // keep directory and file name.
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

// SlogError renders err as a structured "error" attribute group containing
// the message, collected annotations, and the innermost source location.
// It never panics, even on nil errors.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []any
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}

// collectAnnotations walks the error chain gathering slog attributes and the
// outermost recorded source location.
func collectAnnotations(err error, annotations *[]any, source *string) {
	for err != nil {
		var annotated *annotatedError
		if errors.As(err, &annotated) {
			if *source == "" && annotated.source != "" {
				*source = annotated.source
			}
			for _, attr := range annotated.attrs {
				*annotations = append(*annotations, attr)
			}
			err = annotated.cause
			continue
		}
		// Joined errors fan out into multiple chains.
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				collectAnnotations(inner, annotations, source)
			}
			return
		}
		err = errors.Unwrap(err)
	}
}

// Is mirrors errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As mirrors errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap mirrors errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join mirrors errors.Join from the standard library.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
