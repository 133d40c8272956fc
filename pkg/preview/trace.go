package preview

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/vtree"
)

// Default tracer name for Loom preview servers.
const defaultTracerName = "loom"

// TraceConfig configures render pass tracing.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "loom").
	TracerName string

	// AttributeExtractor extracts custom attributes from the render
	// context. Called once per traced pass after the tree is built.
	AttributeExtractor func(ctx *vtree.Context) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures render pass tracing.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx *vtree.Context) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.AttributeExtractor = extractor
	}
}

// newTraceConfig resolves the tracer from the global provider.
//
// Configure the provider in main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
func newTraceConfig(opts ...TraceOption) TraceConfig {
	config := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return config
}

// startPassSpan starts a span covering one render pass.
func (tc *TraceConfig) startPassSpan(ctx context.Context) (context.Context, trace.Span) {
	return tc.tracer.Start(
		ctx,
		"loom.render_pass",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(time.Now()),
	)
}

// finishPassSpan records the pass outcome on the span and ends it.
// rctx may be nil when construction failed before a context existed.
func (tc *TraceConfig) finishPassSpan(span trace.Span, rctx *vtree.Context, err error) {
	if rctx != nil {
		attrs := []attribute.KeyValue{
			attribute.String("loom.pass_id", rctx.PassID().String()),
			attribute.Int("loom.node_count", len(rctx.Nodes())),
			attribute.Int("loom.component_count", len(rctx.Components())),
			attribute.Int("loom.injected_count", len(rctx.Injected())),
		}
		if tc.AttributeExtractor != nil {
			attrs = append(attrs, tc.AttributeExtractor(rctx)...)
		}
		span.SetAttributes(attrs...)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
