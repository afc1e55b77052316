// Package tracing 基于OpenTelemetry的分布式追踪
//
// 启动时调用InitTracer设置全局TracerProvider和Propagator，
// HTTP中间件和业务代码通过StartSpan创建Span。
// 未启用时全局Provider保持no-op，StartSpan返回的Span不会被导出。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Options 追踪配置
type Options struct {
	Enabled     bool
	ServiceName string
	Endpoint    string  // OTLP gRPC端点，如localhost:4317
	Insecure    bool    // 禁用TLS
	SampleRatio float64 // 采样比例，0-1
}

// InitTracer 初始化OpenTelemetry Tracer
// 返回的shutdown必须在进程退出前调用，确保最后一批Span被发送
func InitTracer(opts Options) (func(context.Context) error, error) {
	setPropagator()

	if !opts.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	// 1. 创建OTLP gRPC Exporter（连接是异步建立的）
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// 2. 创建Tracer Provider并设置为全局
	tp, err := NewTracerProvider(exporter, opts.ServiceName, opts.SampleRatio)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// NewTracerProvider 使用给定Exporter创建TracerProvider
// 采样策略：ParentBased(TraceIDRatioBased)，ratio>=1时全量采样
func NewTracerProvider(exporter sdktrace.SpanExporter, serviceName string, ratio float64) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if ratio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// setPropagator 设置全局W3C Trace Context + Baggage传播器
func setPropagator() {
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
}

// StartSpan 从全局Provider创建Span
// ctx包含父Span时新Span自动成为子Span
func StartSpan(ctx context.Context, tracerName, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, opts...)
}

// ExtractTraceID 从Context提取TraceID，没有有效Span时返回空字符串
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID，没有有效Span时返回空字符串
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
