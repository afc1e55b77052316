package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic（重复注册）

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if UserMutationsTotal == nil {
		t.Error("UserMutationsTotal未初始化")
	}
}

// TestNilSafe 未初始化的指标调用便捷函数不应panic
func TestNilSafe(t *testing.T) {
	IncCounterVec(nil, map[string]string{"a": "b"})
	IncGauge(nil)
	DecGauge(nil)
	SetGauge(nil, 1)
	ObserveHistogramVec(nil, map[string]string{"a": "b"}, 1)
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"operation": "create", "result": "duplicate"}
	before := getCounterVecValue(t, UserMutationsTotal, labels)

	IncCounterVec(UserMutationsTotal, labels)
	IncCounterVec(UserMutationsTotal, labels)
	IncCounterVec(UserMutationsTotal, map[string]string{"operation": "create", "result": "success"})

	value := getCounterVecValue(t, UserMutationsTotal, labels)
	if value-before != 2 {
		t.Errorf("CounterVec值错误: expected=+2, got=+%f", value-before)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != 2 {
		t.Errorf("Gauge递增后值错误: expected=2, got=%f", value)
	}

	DecGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != 1 {
		t.Errorf("Gauge递减后值错误: expected=1, got=%f", value)
	}

	SetGauge(HTTPRequestsInProgress, 0)
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/histogram-test"}
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "POST", "path": "/api/histogram-test"}, 0.2)

	if count := getHistogramVecCount(t, HTTPRequestDuration, labels); count != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", count)
	}
}

// TestRealWorldScenario 模拟HTTP请求处理
func TestRealWorldScenario(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	labels := map[string]string{"method": "POST", "path": "/api/users/new", "status": "201"}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	for i := 0; i < 10; i++ {
		IncGauge(HTTPRequestsInProgress)

		start := time.Now()
		time.Sleep(time.Millisecond)

		ObserveHistogramVec(HTTPRequestDuration, map[string]string{
			"method": "POST",
			"path":   "/api/users/new",
		}, time.Since(start).Seconds())
		IncCounterVec(HTTPRequestsTotal, labels)

		DecGauge(HTTPRequestsInProgress)
	}

	if inProgress := getGaugeValue(t, HTTPRequestsInProgress); inProgress != 0 {
		t.Errorf("正在处理的请求数错误: expected=0, got=%f", inProgress)
	}
	if total := getCounterVecValue(t, HTTPRequestsTotal, labels); total-before != 10 {
		t.Errorf("请求总数错误: expected=+10, got=+%f", total-before)
	}
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	observer := histogramVec.With(labels)
	histogram, ok := observer.(prometheus.Histogram)
	if !ok {
		t.Fatal("HistogramVec观测器类型错误")
	}
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
