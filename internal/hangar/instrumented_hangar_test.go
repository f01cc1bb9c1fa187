package hangar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTelemetry(t *testing.T) (*TelemetryProvider, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()

	telemetry := NewTelemetryProviderWith("hangar-test",
		sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
		sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	)
	t.Cleanup(func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	})
	return telemetry, spans, reader
}

func spanNames(spans *tracetest.SpanRecorder) []string {
	var names []string
	for _, s := range spans.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestInstrumentedHangarIntegration(t *testing.T) {
	telemetry, spans, reader := newTestTelemetry(t)

	ih, err := NewInstrumentedHangar(640, 480, telemetry)
	require.NoError(t, err)
	ctx := context.Background()

	index, err := ih.Add(ctx, NewArmoredVehicle("KA01HH1234", "Olive", 60, 12))
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = ih.Add(ctx, NewTank("KA01HH9999", "Green", 40, 30, "Yellow", true))
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	_, err = ih.Add(ctx, NewArmoredVehicle("KA01HH1234", "Olive", 60, 12))
	assert.ErrorIs(t, err, ErrDuplicateElement)

	v, ok := ih.GetAt(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "KA01HH9999", v.Registration())

	ih.Sort(ctx)
	ih.Draw(ctx, nopSurface{})
	assert.Len(t, ih.Vehicles(ctx), 2)

	removed, err := ih.RemoveAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "KA01HH1234", removed.Registration())

	_, err = ih.RemoveAt(ctx, 5)
	assert.ErrorIs(t, err, ErrIndexNotFound)

	assert.Equal(t, []string{
		"hangar.add", "hangar.add", "hangar.add",
		"hangar.get", "hangar.sort", "hangar.draw", "hangar.list",
		"hangar.remove", "hangar.remove",
	}, spanNames(spans))

	failed := spans.Ended()[2]
	assert.Equal(t, "Error", failed.Status().Code.String())

	assert.Equal(t, int64(1), sumOf(t, reader, "hangar_occupancy"))
	assert.Equal(t, int64(18), sumOf(t, reader, "hangar_capacity"))
	assert.Equal(t, int64(9), sumOf(t, reader, "hangar_operations_total"))
}

func TestInstrumentedHangarDrawPositionsVehicles(t *testing.T) {
	telemetry, _, _ := newTestTelemetry(t)

	ih, err := NewInstrumentedHangar(640, 480, telemetry)
	require.NoError(t, err)
	ctx := context.Background()

	vehicles := []Vehicle{
		NewArmoredVehicle("A", "Olive", 60, 12),
		NewArmoredVehicle("B", "Olive", 60, 12),
		NewArmoredVehicle("C", "Olive", 60, 12),
		NewArmoredVehicle("D", "Olive", 60, 12),
	}
	for _, v := range vehicles {
		_, err := ih.Add(ctx, v)
		require.NoError(t, err)
	}

	ih.Draw(ctx, nopSurface{})

	x, y := vehicles[3].Position()
	assert.Equal(t, 10, x)
	assert.Equal(t, 101, y)
}

func TestInstrumentedHangarCloseWithdrawsGauges(t *testing.T) {
	telemetry, _, reader := newTestTelemetry(t)
	ctx := context.Background()

	first, err := NewInstrumentedHangar(640, 480, telemetry)
	require.NoError(t, err)
	_, err = first.Add(ctx, NewArmoredVehicle("KA01", "Olive", 60, 12))
	require.NoError(t, err)

	first.Close(ctx)
	second, err := NewInstrumentedHangar(640, 480, telemetry)
	require.NoError(t, err)

	assert.Equal(t, int64(second.Capacity()), sumOf(t, reader, "hangar_capacity"))
	assert.Equal(t, int64(0), sumOf(t, reader, "hangar_occupancy"))

	_, err = second.Add(ctx, NewArmoredVehicle("KA02", "Olive", 60, 12))
	require.NoError(t, err)
	assert.Equal(t, int64(1), sumOf(t, reader, "hangar_occupancy"))
}
