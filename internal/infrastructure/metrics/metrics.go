package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CloudReel API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Video record saves
	VideoSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "video_saves_total",
			Help:      "Total video metadata records written",
		},
		[]string{"status"},
	)

	// Bytes reported by the media store for saved videos
	VideoBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "video_bytes_total",
			Help:      "Total original bytes across saved videos",
		},
	)

	// Media store operations counter
	MediaStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "mediastore_operations_total",
			Help:      "Total media store operations",
		},
		[]string{"operation", "status"},
	)

	// Media store operation duration
	MediaStoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "mediastore_duration_seconds",
			Help:      "Media store operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	// Rendition URL derivations
	RenditionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "renditions_total",
			Help:      "Total rendition URLs derived",
		},
		[]string{"kind"},
	)

	// Upload signatures issued
	UploadSignaturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudreel",
			Subsystem: "api",
			Name:      "upload_signatures_total",
			Help:      "Total direct-upload signatures issued",
		},
		[]string{"asset_type"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordVideoSave records a video metadata write
func RecordVideoSave(status string, bytes int64) {
	VideoSavesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		VideoBytesTotal.Add(float64(bytes))
	}
}

// RecordMediaStoreOperation records a media store call
func RecordMediaStoreOperation(operation, status string, durationSec float64) {
	MediaStoreOperationsTotal.WithLabelValues(operation, status).Inc()
	MediaStoreDuration.WithLabelValues(operation).Observe(durationSec)
}

// RecordRendition records a rendition URL derivation
func RecordRendition(kind string) {
	RenditionsTotal.WithLabelValues(kind).Inc()
}

// RecordUploadSignature records an issued upload signature
func RecordUploadSignature(assetType string) {
	UploadSignaturesTotal.WithLabelValues(assetType).Inc()
}
