package graphql

import (
	"fmt"

	"github.com/fenwickgql/graphqlcore/errors"
)

func errNoSubscriptionRoot() *errors.QueryError {
	return &errors.QueryError{Message: "schema has no subscription root type", Rule: "NoSubscriptionRoot"}
}

func errMultiRootSubscription() *errors.QueryError {
	return &errors.QueryError{Message: "subscriptions must select exactly one top-level field", Rule: "MultiRootSubscription"}
}

func errUnknownSubscriptionField(name string) *errors.QueryError {
	return &errors.QueryError{Message: fmt.Sprintf("unknown subscription field %q", name), Rule: "UnknownSubscriptionField"}
}

func errSubscriptionNotIterable(name string) *errors.QueryError {
	return &errors.QueryError{Message: fmt.Sprintf("subscribe callback for %q did not return an async iterator", name), Rule: "SubscriptionNotIterable"}
}

// subscriptionTerminalError wraps the error an event value's
// SubscriptionError() method reports, distinguishing it from an ordinary
// per-event mapping error: it ends the stream instead of letting the
// stream continue past it.
type subscriptionTerminalError struct {
	err error
}

func (e *subscriptionTerminalError) Error() string { return e.err.Error() }
func (e *subscriptionTerminalError) Unwrap() error { return e.err }

// withSubscriptionID stamps err's Extensions with the stream's correlation
// id (§4.J), so a client can tie a setup error or any per-event error back
// to the Subscribe call that produced it.
func withSubscriptionID(err *errors.QueryError, id string) *errors.QueryError {
	if err == nil {
		return nil
	}
	return err.WithExtension("subscriptionId", id)
}
