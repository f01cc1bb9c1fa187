package hangar

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"hangar/internal/logging"
)

// InstrumentedHangar is a Hangar of vehicles whose operations are traced and
// measured.
type InstrumentedHangar struct {
	*Hangar[Vehicle]
	telemetry *TelemetryProvider

	// Metrics
	operations        metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	capacityGauge     metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
}

func NewInstrumentedHangar(width, height int, telemetry *TelemetryProvider) (*InstrumentedHangar, error) {
	base := New[Vehicle](width, height)

	meter := telemetry.Meter()

	operations, err := meter.Int64Counter("hangar_operations_total",
		metric.WithDescription("Total number of hangar operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("hangar_occupancy",
		metric.WithDescription("Current number of parked vehicles"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	capacityGauge, err := meter.Int64UpDownCounter("hangar_capacity",
		metric.WithDescription("Total number of places in the hangar"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("hangar_operation_duration_seconds",
		metric.WithDescription("Duration of hangar operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	capacityGauge.Add(context.Background(), int64(base.Capacity()))

	return &InstrumentedHangar{
		Hangar:            base,
		telemetry:         telemetry,
		operations:        operations,
		occupancyGauge:    occupancyGauge,
		capacityGauge:     capacityGauge,
		operationDuration: operationDuration,
	}, nil
}

// Close withdraws the hangar's capacity and occupancy from the shared gauges.
// Call it before replacing the hangar with a new one.
func (ih *InstrumentedHangar) Close(ctx context.Context) {
	ih.capacityGauge.Add(ctx, -int64(ih.Capacity()))
	ih.occupancyGauge.Add(ctx, -int64(ih.Len()))
}

func vehicleAttributes(v Vehicle) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("vehicle.registration_number", v.Registration()),
		attribute.String("vehicle.kind", string(v.Kind())),
		attribute.String("vehicle.color", v.MainColor()),
	}
}

func (ih *InstrumentedHangar) record(ctx context.Context, start time.Time, labels []attribute.KeyValue) {
	ih.operations.Add(ctx, 1, metric.WithAttributes(labels...))
	ih.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))
}

func (ih *InstrumentedHangar) Add(ctx context.Context, v Vehicle) (int, error) {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.add",
		trace.WithAttributes(vehicleAttributes(v)...))
	defer span.End()

	start := time.Now()
	index, err := ih.Hangar.Add(v)

	labels := []attribute.KeyValue{
		attribute.String("operation", "add"),
		attribute.String("vehicle_kind", string(v.Kind())),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		span.SetAttributes(attribute.Int("place_index", index))
		span.AddEvent("vehicle_parked", trace.WithAttributes(attribute.Int("place_index", index)))
		labels = append(labels, attribute.String("status", "success"))
		ih.occupancyGauge.Add(ctx, 1)
	}

	ih.record(ctx, start, labels)
	return index, err
}

func (ih *InstrumentedHangar) RemoveAt(ctx context.Context, index int) (Vehicle, error) {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.remove",
		trace.WithAttributes(attribute.Int("place_index", index)))
	defer span.End()

	start := time.Now()
	v, err := ih.Hangar.RemoveAt(index)

	labels := []attribute.KeyValue{attribute.String("operation", "remove")}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		span.SetAttributes(vehicleAttributes(v)...)
		span.AddEvent("vehicle_left")
		labels = append(labels, attribute.String("status", "success"))
		ih.occupancyGauge.Add(ctx, -1)
	}

	ih.record(ctx, start, labels)
	return v, err
}

func (ih *InstrumentedHangar) GetAt(ctx context.Context, index int) (Vehicle, bool) {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.get",
		trace.WithAttributes(attribute.Int("place_index", index)))
	defer span.End()

	start := time.Now()
	v, ok := ih.Hangar.GetAt(index)

	labels := []attribute.KeyValue{attribute.String("operation", "get")}
	if !ok {
		span.AddEvent("vehicle_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.SetAttributes(vehicleAttributes(v)...)
		labels = append(labels, attribute.String("status", "found"))
	}

	ih.record(ctx, start, labels)
	return v, ok
}

// Sort orders the hangar with CompareVehicles.
func (ih *InstrumentedHangar) Sort(ctx context.Context) {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.sort",
		trace.WithAttributes(attribute.Int("vehicle_count", ih.Len())))
	defer span.End()

	start := time.Now()
	ih.Hangar.Sort(CompareVehicles)
	logging.Debugf(ctx, "sorted %d vehicles", ih.Len())

	ih.record(ctx, start, []attribute.KeyValue{
		attribute.String("operation", "sort"),
		attribute.String("status", "success"),
	})
}

func (ih *InstrumentedHangar) Draw(ctx context.Context, s Surface) {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.draw",
		trace.WithAttributes(
			attribute.Int("vehicle_count", ih.Len()),
			attribute.Int("surface.width", ih.Width()),
			attribute.Int("surface.height", ih.Height()),
		))
	defer span.End()

	start := time.Now()
	ih.Hangar.Draw(s)

	ih.record(ctx, start, []attribute.KeyValue{
		attribute.String("operation", "draw"),
		attribute.String("status", "success"),
	})
}

// Vehicles returns the parked vehicles in storage order.
func (ih *InstrumentedHangar) Vehicles(ctx context.Context) []Vehicle {
	ctx, span := ih.telemetry.Tracer().Start(ctx, "hangar.list")
	defer span.End()

	start := time.Now()
	vehicles := make([]Vehicle, 0, ih.Len())
	for v := range ih.All() {
		vehicles = append(vehicles, v)
	}

	span.SetAttributes(
		attribute.Int("vehicle_count", len(vehicles)),
		attribute.Int("total_capacity", ih.Capacity()),
	)

	ih.record(ctx, start, []attribute.KeyValue{
		attribute.String("operation", "list"),
		attribute.String("status", "success"),
	})
	return vehicles
}
