package report

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"rbf.dev/frontend_testing_user/frontendtesting"
)

var (
	descSuccess = prometheus.NewDesc(
		"frontend_testing_success",
		"Whether the last test user creation succeeded.",
		nil,
		nil,
	)
	descFailure = prometheus.NewDesc(
		"frontend_testing_failure",
		"Whether the last test user creation failed, by failure kind.",
		[]string{"kind"},
		nil,
	)
	descRequestDuration = prometheus.NewDesc(
		"frontend_testing_request_duration_seconds",
		"Duration of the call to the testing API.",
		nil,
		nil,
	)
	descStatusCode = prometheus.NewDesc(
		"frontend_testing_response_status_code",
		"HTTP status code returned by the testing API, 0 if no response was received.",
		nil,
		nil,
	)
	descVendorFixture = prometheus.NewDesc(
		"frontend_testing_vendor_fixture",
		"Whether a vendor and product fixture was requested.",
		[]string{"language"},
		nil,
	)
	descFinished = prometheus.NewDesc(
		"frontend_testing_finished_timestamp_seconds",
		"Unix time at which the run finished.",
		nil,
		nil,
	)
)

// RunStats describes one test user creation run.
type RunStats struct {
	Language      string
	IncludeVendor bool
	StatusCode    int
	Duration      time.Duration
	Finished      time.Time
	// Nil when the run succeeded.
	Err           error
}

type StatsProvider interface {
	Stats() *RunStats
}

type collector struct {
	provider StatsProvider
}

func toBool(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func (collector collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(collector, ch)
}

func (collector collector) Collect(ch chan<- prometheus.Metric) {
	stats := collector.provider.Stats()

	if stats == nil {
		ch <- prometheus.NewInvalidMetric(descSuccess, fmt.Errorf("No run statistics available"))
		return
	}

	ch <- prometheus.MustNewConstMetric(descSuccess, prometheus.GaugeValue, toBool(stats.Err == nil))

	failure, isExchangeFailure := frontendtesting.KindOf(stats.Err)

	for _, kind := range frontendtesting.ErrorKindValues() {
		failed := isExchangeFailure && failure == kind
		ch <- prometheus.MustNewConstMetric(descFailure, prometheus.GaugeValue, toBool(failed), kind.String())
	}

	ch <- prometheus.MustNewConstMetric(descRequestDuration, prometheus.GaugeValue, stats.Duration.Seconds())
	ch <- prometheus.MustNewConstMetric(descStatusCode, prometheus.GaugeValue, float64(stats.StatusCode))
	ch <- prometheus.MustNewConstMetric(descVendorFixture, prometheus.GaugeValue, toBool(stats.IncludeVendor), stats.Language)
	ch <- prometheus.MustNewConstMetric(descFinished, prometheus.GaugeValue, float64(stats.Finished.Unix()))
}

// Stats lets a RunStats value serve as its own provider.
func (stats *RunStats) Stats() *RunStats {
	return stats
}

func RegisterCollector(provider StatsProvider, reg prometheus.Registerer) {
	collector := collector{provider}
	reg.MustRegister(collector)
}

// WriteTextfile writes the run statistics to path in the Prometheus text
// format, for pickup by a textfile collector.
func WriteTextfile(path string, stats *RunStats) error {
	reg := prometheus.NewRegistry()
	RegisterCollector(stats, reg)

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("Unable to write metrics textfile: %w", err)
	}

	return nil
}
