// Package metrics 提供基于Prometheus的指标收集
//
// # 指标类型
//
//   - Counter: 只增不减的累计值（请求总数、用户变更次数）
//   - Gauge: 可增可减的瞬时值（正在处理的请求数）
//   - Histogram: 观测值分布（请求耗时）
//
// # 使用示例
//
//	// 1. 启动时初始化
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码记录指标
//	metrics.IncCounterVec(metrics.UserMutationsTotal, map[string]string{
//	    "operation": "create",
//	    "result":    "success",
//	})
//
// # 命名规范
//
//   - Counter以_total结尾
//   - Histogram以单位结尾（_seconds）
//   - 标签只使用有限取值（method、route、status），不要用user_id
//
// 未调用InitMetrics时所有便捷函数都是no-op。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initOnce 防止重复注册
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/api/users/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// UserMutationsTotal 用户写操作总数（Counter）
	// 标签：operation（create/update/delete）、result（success/duplicate/not_found/error）
	UserMutationsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto注册到默认Registry，多次调用只生效一次
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		UserMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_mutations_total",
				Help: "用户写操作总数",
			},
			[]string{"operation", "result"},
		)
	})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
