package engine

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/probatch/probatch/internal/model"
)

// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Summarize computes aggregate statistics from a result list. It is a
// pure function of its inputs: recomputing over the same results always
// yields the same summary.
func Summarize(requested int, results []model.TestExecutionResult) model.Summary {
	summary := model.Summary{
		Total:     requested,
		Completed: len(results),
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	var latencySum float64
	var latencyCount int

	for _, r := range results {
		switch r.Status {
		case model.StatusPassed:
			summary.Passed++
		case model.StatusFailed:
			summary.Failed++
		case model.StatusError:
			summary.Error++
		case model.StatusSkipped:
			summary.Skipped++
		}

		if r.ResponseTime != nil {
			latencySum += *r.ResponseTime
			latencyCount++
			// Recorded in microseconds for histogram resolution. Values
			// past the trackable ceiling are clamped rather than dropped
			// so they still shape the percentiles.
			micros := int64(*r.ResponseTime * float64(time.Millisecond/time.Microsecond))
			if micros > histogramMax {
				micros = histogramMax
			}
			hist.RecordValue(micros)
		}
	}

	if summary.Completed > 0 {
		summary.PassRate = float64(summary.Passed) / float64(summary.Completed) * 100
	}
	if latencyCount > 0 {
		summary.AvgResponseTime = latencySum / float64(latencyCount)
		summary.P50ResponseTime = float64(hist.ValueAtQuantile(50)) / 1000
		summary.P95ResponseTime = float64(hist.ValueAtQuantile(95)) / 1000
		summary.P99ResponseTime = float64(hist.ValueAtQuantile(99)) / 1000
	}

	return summary
}
