// Package errors defines the error value used throughout the schema builder,
// validator, and subscription kernel.
package errors

import "fmt"

// Location pinpoints a position in a GraphQL source document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a sorts strictly before b, line first then column.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// QueryError is the single error type surfaced to callers, whether raised
// while building a schema, validating it, or resolving a subscription.
type QueryError struct {
	Message       string                 `json:"message"`
	Locations     []Location             `json:"locations,omitempty"`
	Path          []interface{}          `json:"path,omitempty"`
	Rule          string                 `json:"-"`
	ResolverError error                  `json:"-"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

var _ error = (*QueryError)(nil)

// Errorf builds a QueryError with no location information.
func Errorf(format string, a ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, a...),
	}
}

// WithLocations attaches source locations to err, returning err for chaining.
func (err *QueryError) WithLocations(locs ...Location) *QueryError {
	err.Locations = append(err.Locations, locs...)
	return err
}

// WithRule sets the named invariant the error enforces, returning err for chaining.
func (err *QueryError) WithRule(rule string) *QueryError {
	err.Rule = rule
	return err
}

// WithExtension stashes a key/value pair under Extensions, returning err for chaining.
func (err *QueryError) WithExtension(key string, value interface{}) *QueryError {
	if err.Extensions == nil {
		err.Extensions = make(map[string]interface{})
	}
	err.Extensions[key] = value
	return err
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

// Unwrap exposes the underlying resolver error, if any, to errors.Is/As.
func (err *QueryError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.ResolverError
}

// SubscriptionError can be implemented by an event value delivered by a
// subscription's source stream to signal a terminal failure while the stream is still
// active. After a subscription has started, this is the mechanism for
// informing the subscriber of stream failure gracefully, rather than by
// panicking out of a resolve callback.
type SubscriptionError interface {
	// SubscriptionError is called after each event is read from the source
	// iterator. A nil return means the subscription continues normally; a
	// non-nil return means the stream has reached a terminal error: the
	// subscription's channel is closed and the error is surfaced to the
	// caller as the final Result.
	SubscriptionError() error
}
