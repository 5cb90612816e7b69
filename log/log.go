// Package log defines the logging capability used to report panics
// recovered while invoking user callbacks.
package log

import (
	"context"
	"log"
	"runtime"
)

// Logger is the interface used to log panics recovered during subscription
// setup or event mapping. It is settable via the graphql.WithLogger option
// to graphql.ParseSchema / Schema.Extend.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(ctx context.Context, value interface{})

// LogPanic calls f with the given context and panic value.
func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) {
	f(ctx, value)
}

// DefaultLogger logs recovered panics through the standard log package,
// including a stack trace.
type DefaultLogger struct{}

// LogPanic is used to log recovered panic values.
func (l *DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	log.Printf("graphql: panic occurred: %v\n%s\ncontext: %v", value, buf, ctx)
}
