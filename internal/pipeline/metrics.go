package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_documents_processed_total",
			Help: "Total number of processed documents",
		},
		[]string{"status"}, // status: ok, open_failed
	)

	imagesExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_images_extracted_total",
			Help: "Total number of embedded images extracted",
		},
	)

	ocrSoftFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_ocr_soft_failures_total",
			Help: "Total number of images whose OCR produced a sentinel instead of text",
		},
	)

	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summary_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25, 50, 100},
		},
		[]string{"stage"},
	)
)
