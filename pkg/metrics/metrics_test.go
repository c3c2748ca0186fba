package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording draw metrics", func() {
			Convey("Then it should record executed draws", func() {
				So(func() {
					RecordDrawExecuted()
					RecordDrawExecuted()
				}, ShouldNotPanic)
			})

			Convey("And it should record rejections and refusals", func() {
				So(func() {
					RecordDrawRejected()
					RecordDrawBusy()
				}, ShouldNotPanic)
			})

			Convey("And it should record winners and ticks", func() {
				So(func() {
					RecordWinners(3)
					RecordSpinTick()
					RecordSpinTick()
				}, ShouldNotPanic)
			})

			Convey("And it should record draw duration", func() {
				So(func() {
					RecordDrawDuration(100.0)
					RecordDrawDuration(3050.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating inventory gauges", func() {
			Convey("Then it should accept any counts", func() {
				So(func() {
					UpdateTicketsAvailable(100)
					UpdatePrizesAvailable(5)
					UpdatePrizesTotal(8)
					UpdateOwnersTotal(10)
					UpdateHistoryEntries(3)
					UpdateTicketsAvailable(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and errors", func() {
				So(func() {
					RecordHTTPRequest("draws", "POST", "200")
					RecordHTTPRequestDuration("draws", "POST", "200", 3010.0)
					RecordErrorByEndpoint("draws", "POST", "conflict")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording history store latency", func() {
			So(func() {
				RecordHistoryPrependLatency(0.2)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("Then it should be gatherable", func() {
			reg := GetRegistry()
			So(reg, ShouldNotBeNil)

			RecordDrawExecuted()
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
