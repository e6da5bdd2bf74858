package engine

import (
	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSkippedDelay     = "skipped_delay"
	statusSkippedDuplicate = "skipped_duplicate"
	statusSkippedRateLimit = "skipped_rate_limit"
	statusError            = "error"
)

// Metrics 统计每个事件的处理结果
type Metrics struct {
	dispatchCounter *prometheus.CounterVec
}

// NewMetrics reg 为 nil 时注册到默认的 Registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	dispatchCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autoreply_dispatch_total",
			Help: "自动回复处理结果统计",
		},
		[]string{"event", "status"},
	)
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(dispatchCounter)
	return &Metrics{dispatchCounter: dispatchCounter}
}

func (m *Metrics) observe(ev domain.TriggerEvent, status string) {
	if m == nil {
		return
	}
	m.dispatchCounter.WithLabelValues(ev.String(), status).Inc()
}
