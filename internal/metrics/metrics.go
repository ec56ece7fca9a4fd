// Package metrics holds the Prometheus collectors of the barcode service.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/barcode-maker/barcode-maker/internal/encoder"
)

// Render outcomes used as status label.
const (
	StatusOK          = "ok"
	StatusInvalid     = "invalid"
	StatusUnsupported = "unsupported"
	StatusError       = "error"
)

var (
	renders = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "barcode_renders_total",
			Help: "Number of rendered barcodes by format, image format and outcome.",
		},
		[]string{"format", "image", "status"},
	)

	renderDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Name:    "barcode_render_duration_seconds",
			Help:    "Time spent encoding and drawing one barcode.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), //nolint:mnd
		},
		[]string{"format"},
	)

	exports = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "barcode_exports_total",
			Help: "Number of downloads, single image or zip archive.",
		},
		[]string{"kind"},
	)

	profiles = promauto.NewGauge( //nolint:gochecknoglobals
		prometheus.GaugeOpts{
			Name: "barcode_profiles",
			Help: "Number of profiles with stored settings.",
		},
	)
)

// Status maps a render error to its status label.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, encoder.ErrUnsupportedFormat):
		return StatusUnsupported
	case errors.Is(err, encoder.ErrInvalidValue):
		return StatusInvalid
	default:
		return StatusError
	}
}

// ObserveRender records one render attempt.
func ObserveRender(format, image string, elapsed time.Duration, err error) {
	renders.WithLabelValues(format, image, Status(err)).Inc()

	if err == nil {
		renderDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	}
}

// ObserveExport records a finished download of the given kind.
func ObserveExport(kind string) {
	exports.WithLabelValues(kind).Inc()
}

// SetProfiles records the number of stored profiles.
func SetProfiles(n int64) {
	profiles.Set(float64(n))
}
