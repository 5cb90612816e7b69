package graphql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	graphql "github.com/fenwickgql/graphqlcore"
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/gqltesting"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

func drain(t *testing.T, ch <-chan *graphql.Result, timeout time.Duration) []*graphql.Result {
	t.Helper()
	var out []*graphql.Result
	deadline := time.After(timeout)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, r)
		case <-deadline:
			t.Fatal("timed out draining subscription channel")
			return nil
		}
	}
}

func TestSubscribeUnknownFieldSetupError(t *testing.T) {
	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { missing }`, "", nil, map[string]interface{}{})
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected exactly one setup-error Result, got %d", len(results))
	}
	gqltesting.RequireErrorRule(t, results[0], "UnknownSubscriptionField")
}

func TestSubscribeNoSubscriptionRootSetupError(t *testing.T) {
	schema := graphql.MustParseSchema(`type Query { hello: String! }`)
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `{ hello }`, "", nil, nil)
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected exactly one setup-error Result, got %d", len(results))
	}
	gqltesting.RequireErrorRule(t, results[0], "NoSubscriptionRoot")
}

func TestSubscribeMultiFieldSetupError(t *testing.T) {
	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { a: Int! b: Int! }
`)
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { a b }`, "", nil, nil)
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected exactly one setup-error Result, got %d", len(results))
	}
	gqltesting.RequireErrorRule(t, results[0], "MultiRootSubscription")
}

func TestSubscribeNotIterableSetupError(t *testing.T) {
	type root struct{ Ticks int }
	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { ticks }`, "", nil, root{Ticks: 1})
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected exactly one setup-error Result, got %d", len(results))
	}
	gqltesting.RequireErrorRule(t, results[0], "SubscriptionNotIterable")
}

func TestSubscribeDeliversMappedEvents(t *testing.T) {
	events := make(chan interface{}, 2)
	events <- map[string]interface{}{"ticks": 1}
	events <- map[string]interface{}{"ticks": 2}
	close(events)

	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	root := map[string]interface{}{"ticks": events}
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { ticks }`, "", nil, root)
	results := drain(t, ch, time.Second)
	if len(results) != 2 {
		t.Fatalf("expected 2 delivered events, got %d", len(results))
	}
	for _, r := range results {
		gqltesting.AssertNoErrors(t, r)
	}
}

func TestSubscribeCancellationStopsStream(t *testing.T) {
	events := make(chan interface{})
	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	root := map[string]interface{}{"ticks": events}
	ctx, cancel := context.WithCancel(context.Background())
	ch := schema.Subscribe(ctx, gqltesting.EchoExecutor{}, `subscription { ticks }`, "", nil, root)

	cancel()
	// Context cancellation is a clean shutdown: the source iterator
	// reports (ok=false, err=ctx.Err()), and ok is authoritative, so no
	// error Result is ever emitted for it — only the channel closing.
	results := drain(t, ch, 2*time.Second)
	if len(results) != 0 {
		t.Fatalf("expected cancellation to close the stream with no Results, got %d", len(results))
	}
}

type panickingRoot struct{}

func (panickingRoot) Ticks() interface{} {
	panic("boom: subscribe callback exploded")
}

func TestSubscribeSetupCallbackPanicRecovered(t *testing.T) {
	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { ticks }`, "", nil, panickingRoot{})
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected exactly one Result reporting the recovered panic, got %d", len(results))
	}
	if len(results[0].Errors) == 0 {
		t.Fatal("expected the recovered panic to be reported as an error")
	}
	if results[0].Errors[0].ResolverError == nil {
		t.Error("expected the recovered panic to be wrapped and attached as ResolverError")
	}
}

type panickingExecutor struct{}

func (panickingExecutor) Execute(context.Context, *typesystem.Schema, *ast.Document, *ast.OperationDefinition, interface{}, map[string]interface{}) *graphql.Result {
	panic("boom: executor exploded mid-event")
}

func TestSubscribeEventExecutorPanicRecovered(t *testing.T) {
	events := make(chan interface{}, 1)
	events <- map[string]interface{}{"ticks": 1}
	close(events)

	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	root := map[string]interface{}{"ticks": events}
	ch := schema.Subscribe(context.Background(), panickingExecutor{}, `subscription { ticks }`, "", nil, root)
	results := drain(t, ch, time.Second)
	if len(results) != 1 {
		t.Fatalf("expected the panicking event to still produce one Result, got %d", len(results))
	}
	if len(results[0].Errors) == 0 {
		t.Fatal("expected the recovered panic to be reported as an error rather than crashing the stream")
	}
	if results[0].Errors[0].ResolverError == nil {
		t.Error("expected the recovered panic to be wrapped and attached as ResolverError")
	}
}

type terminalEvent struct{ err error }

func (e terminalEvent) SubscriptionError() error { return e.err }

func TestSubscribeTerminalSubscriptionErrorEndsStream(t *testing.T) {
	boom := errors.New("boom")
	events := make(chan interface{}, 2)
	events <- map[string]interface{}{"ticks": 1}
	events <- terminalEvent{err: boom}
	close(events)

	schema := graphql.MustParseSchema(`
type Query { hello: String! }
type Subscription { ticks: Int! }
`)
	root := map[string]interface{}{"ticks": events}
	ch := schema.Subscribe(context.Background(), gqltesting.EchoExecutor{}, `subscription { ticks }`, "", nil, root)
	results := drain(t, ch, time.Second)
	if len(results) != 2 {
		t.Fatalf("expected the stream to end right after the terminal event, got %d results", len(results))
	}
	gqltesting.AssertNoErrors(t, results[0])
	if len(results[1].Errors) == 0 {
		t.Fatal("expected the terminal event's Result to carry an error")
	}
	if results[1].Errors[0].Extensions["subscriptionId"] == nil {
		t.Error("expected the terminal error to be stamped with the subscription's correlation id")
	}
}
