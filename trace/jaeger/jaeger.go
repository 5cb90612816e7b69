// Package jaeger wires a concrete production tracer: a Jaeger-backed
// implementation of trace.Tracer, for deployments that want real spans
// rather than the no-op default. Tests use trace.NoopTracer instead.
package jaeger

import (
	"io"

	ot "github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegermetrics "github.com/uber/jaeger-lib/metrics"

	"github.com/fenwickgql/graphqlcore/trace"
	"github.com/fenwickgql/graphqlcore/trace/opentracing"
)

// NewJaegerTracer builds a Tracer that reports spans to a local Jaeger
// agent at agentHostPort (e.g. "localhost:6831") under serviceName, using
// probabilistic sampling. The returned io.Closer must be closed on shutdown
// to flush buffered spans.
func NewJaegerTracer(serviceName, agentHostPort string, samplingRatio float64) (trace.Tracer, io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "probabilistic",
			Param: samplingRatio,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: agentHostPort,
			LogSpans:           false,
		},
	}

	jTracer, closer, err := cfg.NewTracer(
		jaegercfg.Metrics(jaegermetrics.NullFactory),
	)
	if err != nil {
		return nil, nil, err
	}

	// The opentracing global tracer is what opentracing.StartSpanFromContext
	// (used by trace/opentracing.Tracer) consults; registering it here keeps
	// the adapter itself ignorant of which concrete OpenTracing backend is
	// in use.
	ot.SetGlobalTracer(jTracer)

	return opentracing.Tracer{}, closer, nil
}
