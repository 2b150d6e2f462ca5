// Package metrics holds the Prometheus instruments for the log store.
// Each Metrics value owns its registry so several stores can coexist in
// one process.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "flashlog"

const (
	OpRead  = "read"
	OpWrite = "write"
)

type Metrics struct {
	Registry *prometheus.Registry

	ChunkTransfers   *prometheus.CounterVec
	BytesTransferred *prometheus.CounterVec
	PageErases       prometheus.Counter
	RecoveryDuration prometheus.Histogram
	Recoveries       *prometheus.CounterVec
	PageScanDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ChunkTransfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_transfers_total",
			Help:      "Buffer chunk transfers issued to the medium.",
		}, []string{"op"}),
		BytesTransferred: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_transferred_total",
			Help:      "Bytes moved through the medium buffer.",
		}, []string{"op"}),
		PageErases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_erases_total",
			Help:      "Pages erased after upload.",
		}),
		RecoveryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recovery_seconds",
			Help:      "Time spent locating the write and upload cursors.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		Recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recoveries_total",
			Help:      "Cursor recoveries by resulting ring state.",
		}, []string{"state"}),
		PageScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_scan_seconds",
			Help:      "Time to read every page header once.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}

	m.Registry.MustRegister(
		m.ChunkTransfers,
		m.BytesTransferred,
		m.PageErases,
		m.RecoveryDuration,
		m.Recoveries,
		m.PageScanDuration,
	)
	return m
}

// Sample is one flattened series value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers the registry into flat samples sorted by name.
// Histograms report their observation count and sum as _count and _sum.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			labels := labelMap(metric.GetLabel())
			switch fam.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: fam.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: fam.GetName(), Labels: labels, Value: metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: fam.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: fam.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.GetName()] = p.GetValue()
	}
	return m
}
