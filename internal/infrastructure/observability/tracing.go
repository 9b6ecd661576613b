package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cloudreel-server"

// GetTracer returns the tracer for the CloudReel server.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// VideoAttributes returns common attributes for video spans.
func VideoAttributes(videoID, ownerID, publicID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("video.id", videoID),
		attribute.String("video.owner_id", ownerID),
		attribute.String("video.public_id", publicID),
	}
}

// StartVideoSaveSpan starts a new span for persisting a video record.
func StartVideoSaveSpan(ctx context.Context, videoID, ownerID, publicID string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "video.save",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(VideoAttributes(videoID, ownerID, publicID)...),
	)
}

// StartVideoListSpan starts a new span for listing a user's videos.
func StartVideoListSpan(ctx context.Context, ownerID string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "video.list",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("video.owner_id", ownerID)),
	)
}

// StartMediaStoreSpan starts a new span for a media store call.
func StartMediaStoreSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "mediastore."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mediastore.operation", operation)),
	)
}
