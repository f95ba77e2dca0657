package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jameszjgao/vouchap-crm/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

type appMetrics struct {
	resolverOutcomes   metric.Int64Counter
	permissionChecks   metric.Int64Counter
	adminMutations     metric.Int64Counter
	refreshBroadcasts  metric.Int64Counter
	roleSyncCounter    metric.Int64Counter
	customerListDurMS  metric.Float64Histogram
	customerListPartial metric.Int64Counter
	overviewPartial    metric.Int64Counter
}

var (
	metricsMu sync.RWMutex
	current   *appMetrics
)

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELMetricsEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.OTELEnvironment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter("vouchap-crm")
	m := &appMetrics{}
	if m.resolverOutcomes, err = meter.Int64Counter("rbac.resolver.outcomes"); err != nil {
		return nil, err
	}
	if m.permissionChecks, err = meter.Int64Counter("rbac.permission.checks"); err != nil {
		return nil, err
	}
	if m.adminMutations, err = meter.Int64Counter("rbac.admin.mutations"); err != nil {
		return nil, err
	}
	if m.refreshBroadcasts, err = meter.Int64Counter("rbac.refresh.broadcasts"); err != nil {
		return nil, err
	}
	if m.roleSyncCounter, err = meter.Int64Counter("rbac.role.syncs"); err != nil {
		return nil, err
	}
	if m.customerListDurMS, err = meter.Float64Histogram("crm.customer_list.duration_ms"); err != nil {
		return nil, err
	}
	if m.customerListPartial, err = meter.Int64Counter("crm.customer_list.partial_results"); err != nil {
		return nil, err
	}
	if m.overviewPartial, err = meter.Int64Counter("crm.overview.partial_results"); err != nil {
		return nil, err
	}

	metricsMu.Lock()
	current = m
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint, "interval", cfg.OTELMetricsExportInterval.String())
	return mp, nil
}

func getMetrics() *appMetrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return current
}

// RecordResolverOutcome counts one resolution: outcome is "store", "default"
// or "fallback" (store failed, default used).
func RecordResolverOutcome(ctx context.Context, role, outcome string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.resolverOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("outcome", outcome),
	))
}

func RecordPermissionCheck(ctx context.Context, key string, allowed bool) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.permissionChecks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("menu_key", key),
		attribute.Bool("allowed", allowed),
	))
}

func RecordAdminMutation(ctx context.Context, action, status string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.adminMutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("status", status),
	))
}

func RecordRefreshBroadcast(ctx context.Context, transport string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.refreshBroadcasts.Add(ctx, 1, metric.WithAttributes(attribute.String("transport", transport)))
}

func RecordRoleSync(ctx context.Context, scope, status string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.roleSyncCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scope", scope),
		attribute.String("status", status),
	))
}

func RecordCustomerListDuration(ctx context.Context, view string, d time.Duration) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.customerListDurMS.Record(ctx, float64(d.Microseconds())/1000.0, metric.WithAttributes(attribute.String("view", view)))
}

func RecordCustomerListPartial(ctx context.Context, source string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.customerListPartial.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func RecordOverviewPartial(ctx context.Context, view, source string) {
	m := getMetrics()
	if m == nil {
		return
	}
	m.overviewPartial.Add(ctx, 1, metric.WithAttributes(
		attribute.String("view", view),
		attribute.String("source", source),
	))
}
