// Package iterator implements the async iterator capability (§4.G): a
// pull-based, mappable, cooperatively-cancellable stream of events.
package iterator

import (
	"context"

	"go.uber.org/atomic"
)

// AsyncIterator is the capability a subscribe callback's return value must
// satisfy (§4.F step 6 / §4.G). Next blocks until the next event is ready,
// ctx is done, or the stream ends. ok is authoritative for whether the
// stream is over: ok=false means end-of-stream, no more calls to Next are
// useful, regardless of whether err is also set (ctx cancellation reports
// both). ok=true with a non-nil err is a single event's failure — it is
// never terminal on its own, callers must keep calling Next afterward.
type AsyncIterator interface {
	Next(ctx context.Context) (value interface{}, ok bool, err error)
	Cancel()
}

// ChannelIterator adapts a plain receive-only channel (the idiomatic Go
// shape of a "source event stream") into an AsyncIterator. Cancellation is
// observable from a concurrent Next caller without a mutex: cancelled is an
// atomic.Bool, checked both before blocking on the channel and again after
// a value is received, so a racing Cancel can't let one more event slip
// through as a false positive. Cancel also closes done, which releases a
// Next call that is already blocked on the channel.
type ChannelIterator struct {
	ch        <-chan interface{}
	done      chan struct{}
	cancelled atomic.Bool
	inFlight  atomic.Int32
}

// NewChannelIterator wraps ch. Closing ch is equivalent to the producer
// signaling end-of-stream; it is always safe to also call Cancel.
func NewChannelIterator(ch <-chan interface{}) *ChannelIterator {
	return &ChannelIterator{ch: ch, done: make(chan struct{})}
}

func (it *ChannelIterator) Next(ctx context.Context) (interface{}, bool, error) {
	if it.cancelled.Load() {
		return nil, false, nil
	}
	it.inFlight.Inc()
	defer it.inFlight.Dec()
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case <-it.done:
		return nil, false, nil
	case v, open := <-it.ch:
		if !open || it.cancelled.Load() {
			return nil, false, nil
		}
		return v, true, nil
	}
}

func (it *ChannelIterator) Cancel() {
	if !it.cancelled.Swap(true) {
		close(it.done)
	}
}

// InFlight reports how many Next calls are currently blocked on the
// underlying channel; used by tests asserting that Cancel releases waiters.
func (it *ChannelIterator) InFlight() int32 {
	return it.inFlight.Load()
}

// MapFunc transforms one source event into the mapped iterator's output
// value (§4.F step 7: invoking the query executor once per event).
type MapFunc func(ctx context.Context, event interface{}) (interface{}, error)

// MappingIterator composes an AsyncIterator with a MapFunc (§4.G "a mapping
// iterator composes by awaiting the source's next() and applying the user
// function"). Mapping is strictly serialized: Next does not return until
// the previous call's mapFn has completed, which is what gives the
// subscription kernel its one-outstanding-execute-at-a-time ordering
// guarantee (§4.F "Ordering guarantee").
type MappingIterator struct {
	source    AsyncIterator
	mapFn     MapFunc
	cancelled atomic.Bool
}

// NewMappingIterator wraps source, applying mapFn to each event it yields.
func NewMappingIterator(source AsyncIterator, mapFn MapFunc) *MappingIterator {
	return &MappingIterator{source: source, mapFn: mapFn}
}

func (it *MappingIterator) Next(ctx context.Context) (interface{}, bool, error) {
	if it.cancelled.Load() {
		return nil, false, nil
	}
	event, ok, err := it.source.Next(ctx)
	if err != nil {
		return nil, ok, err
	}
	if !ok {
		return nil, false, nil
	}
	if it.cancelled.Load() {
		return nil, false, nil
	}
	mapped, err := it.mapFn(ctx, event)
	return mapped, true, err
}

// Cancel marks the stream cancelled so no further mapping is attempted,
// then cancels the source iterator (§5 "canceling a subscription stream
// must cancel the in-flight mapping future if any and then cancel the
// source iterator"). The in-flight mapFn call itself is cancelled through
// the ctx the caller passed to the Next call that is running it — the
// kernel derives that ctx from the same cancellation signal that calls
// Cancel here.
func (it *MappingIterator) Cancel() {
	it.cancelled.Store(true)
	it.source.Cancel()
}
