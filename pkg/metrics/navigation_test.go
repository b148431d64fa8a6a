package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNavigationMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewNavigationMetrics(reg)
	metrics.ObserveDecision("allow")
	metrics.ObserveDecision("redirect")
	metrics.ObserveDecision("redirect")
	metrics.ObserveReadinessWait(250 * time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "navigation_decisions_total", "outcome", "allow"); err != nil {
		t.Fatalf("fetch allow: %v", err)
	} else if got != 1 {
		t.Fatalf("expected allow=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "navigation_decisions_total", "outcome", "redirect"); err != nil {
		t.Fatalf("fetch redirect: %v", err)
	} else if got != 2 {
		t.Fatalf("expected redirect=2, got %f", got)
	}

	mf := findMetricFamily(mfs, "readiness_wait_seconds")
	if mf == nil {
		t.Fatal("readiness histogram not registered")
	}
	if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected wait sum > 0, got %f", sum)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	metrics := NewNavigationMetrics(nil)
	metrics.ObserveDecision("allow")
	metrics.ObserveReadinessWait(time.Second)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
