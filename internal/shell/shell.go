package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hangar/internal/hangar"
	"hangar/internal/surface"
)

// Shell runs line commands against a single instrumented hangar.
type Shell struct {
	hangar    *hangar.InstrumentedHangar
	scanner   *bufio.Scanner
	out       io.Writer
	telemetry *hangar.TelemetryProvider
	scale     surface.Scale
}

func New(in io.Reader, out io.Writer, telemetry *hangar.TelemetryProvider, scale surface.Scale) *Shell {
	return &Shell{
		scanner:   bufio.NewScanner(in),
		out:       out,
		telemetry: telemetry,
		scale:     scale,
	}
}

// Hangar returns the hangar created by the last create_hangar command.
func (s *Shell) Hangar() *hangar.InstrumentedHangar {
	return s.hangar
}

// Run processes commands until the input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for ctx.Err() == nil && s.scanner.Scan() {
		input := strings.TrimSpace(s.scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))
		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	command := parts[0]
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("command.name", command))

	switch command {
	case "create_hangar":
		s.handleCreateHangar(ctx, parts)
	case "park":
		s.handlePark(ctx, parts)
	case "park_tank":
		s.handleParkTank(ctx, parts)
	case "leave":
		s.handleLeave(ctx, parts)
	case "get":
		s.handleGet(ctx, parts)
	case "status":
		s.handleStatus(ctx)
	case "sort":
		s.handleSort(ctx)
	case "draw":
		s.handleDraw(ctx)
	default:
		trace.SpanFromContext(ctx).AddEvent("unknown_command")
		s.printf("Unknown command: %s\n", command)
	}
}

func (s *Shell) ready(span trace.Span) bool {
	if s.hangar == nil {
		span.AddEvent("hangar_not_created")
		s.println("Hangar not created")
		return false
	}
	return true
}

func (s *Shell) handleCreateHangar(ctx context.Context, parts []string) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.create_hangar")
	defer span.End()

	if len(parts) != 3 {
		span.AddEvent("invalid_arguments")
		s.println("Usage: create_hangar <width> <height>")
		return
	}

	width, werr := strconv.Atoi(parts[1])
	height, herr := strconv.Atoi(parts[2])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		span.RecordError(fmt.Errorf("invalid size: %s x %s", parts[1], parts[2]))
		s.println("Invalid hangar size")
		return
	}
	if width > hangar.MaxSide || height > hangar.MaxSide {
		span.RecordError(fmt.Errorf("hangar too large: %d x %d", width, height))
		s.printf("Hangar too large, max %dx%d\n", hangar.MaxSide, hangar.MaxSide)
		return
	}

	h, err := hangar.NewInstrumentedHangar(width, height, s.telemetry)
	if err != nil {
		span.RecordError(err)
		s.printf("Error creating hangar: %s\n", err)
		return
	}

	if s.hangar != nil {
		s.hangar.Close(ctx)
	}
	s.hangar = h
	span.SetAttributes(attribute.Int("hangar.capacity", h.Capacity()))
	s.printf("Created a hangar with %d places\n", h.Capacity())
}

func parseBody(parts []string) (reg, color string, speed int, weight float64, err error) {
	reg, color = parts[1], parts[2]
	if speed, err = strconv.Atoi(parts[3]); err != nil || speed <= 0 {
		return "", "", 0, 0, fmt.Errorf("invalid max speed: %s", parts[3])
	}
	if weight, err = strconv.ParseFloat(parts[4], 64); err != nil || weight <= 0 {
		return "", "", 0, 0, fmt.Errorf("invalid weight: %s", parts[4])
	}
	return reg, color, speed, weight, nil
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.park_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	if len(parts) != 5 {
		span.AddEvent("invalid_arguments")
		s.println("Usage: park <registration_number> <color> <max_speed> <weight>")
		return
	}

	reg, color, speed, weight, err := parseBody(parts)
	if err != nil {
		span.RecordError(err)
		s.printf("Error: %s\n", err)
		return
	}

	s.park(ctx, span, hangar.NewArmoredVehicle(reg, color, speed, weight))
}

func (s *Shell) handleParkTank(ctx context.Context, parts []string) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.park_tank_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	if len(parts) != 7 {
		span.AddEvent("invalid_arguments")
		s.println("Usage: park_tank <registration_number> <color> <max_speed> <weight> <turret_color> <gun:yes|no>")
		return
	}

	reg, color, speed, weight, err := parseBody(parts)
	if err != nil {
		span.RecordError(err)
		s.printf("Error: %s\n", err)
		return
	}

	var gun bool
	switch strings.ToLower(parts[6]) {
	case "yes", "true":
		gun = true
	case "no", "false":
	default:
		err := fmt.Errorf("invalid gun flag: %s", parts[6])
		span.RecordError(err)
		s.printf("Error: %s\n", err)
		return
	}

	s.park(ctx, span, hangar.NewTank(reg, color, speed, weight, parts[5], gun))
}

func (s *Shell) park(ctx context.Context, span trace.Span, v hangar.Vehicle) {
	index, err := s.hangar.Add(ctx, v)
	switch {
	case errors.Is(err, hangar.ErrCapacityExceeded):
		span.AddEvent("parking_failed")
		s.println("Sorry, hangar is full")
	case errors.Is(err, hangar.ErrDuplicateElement):
		span.AddEvent("parking_failed")
		s.println("Sorry, this vehicle is already parked")
	case err != nil:
		s.printf("Error: %s\n", err)
	default:
		span.AddEvent("parking_successful", trace.WithAttributes(
			attribute.Int("place_index", index),
			attribute.String("vehicle", v.String()),
		))
		s.printf("Allocated place: %d\n", index)
	}
}

func (s *Shell) parseIndex(span trace.Span, parts []string, usage string) (int, bool) {
	if len(parts) != 2 {
		span.AddEvent("invalid_arguments")
		s.println(usage)
		return 0, false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		span.RecordError(fmt.Errorf("invalid index: %s", parts[1]))
		s.println("Invalid index")
		return 0, false
	}
	return index, true
}

func (s *Shell) handleLeave(ctx context.Context, parts []string) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.leave_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	index, ok := s.parseIndex(span, parts, "Usage: leave <index>")
	if !ok {
		return
	}

	v, err := s.hangar.RemoveAt(ctx, index)
	if err != nil {
		span.AddEvent("leave_failed")
		s.printf("Error: %s\n", err)
		return
	}

	span.AddEvent("leave_successful")
	s.printf("Vehicle %s left place %d\n", v.Registration(), index)
}

func (s *Shell) handleGet(ctx context.Context, parts []string) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.get_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	index, ok := s.parseIndex(span, parts, "Usage: get <index>")
	if !ok {
		return
	}

	v, found := s.hangar.GetAt(ctx, index)
	if !found {
		s.println("Not found")
		return
	}
	s.printf("%d\t%s\t%s\t%s\n", index, v.Kind(), v.Registration(), v.MainColor())
}

func (s *Shell) handleStatus(ctx context.Context) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.status_command")
	defer span.End()

	if !s.ready(span) {
		return
	}

	vehicles := s.hangar.Vehicles(ctx)
	if len(vehicles) == 0 {
		span.AddEvent("hangar_empty")
		s.println("Hangar is empty")
		return
	}

	rows := make([][]string, 0, len(vehicles))
	for i, v := range vehicles {
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(v.Kind()),
			v.Registration(),
			v.MainColor(),
			strconv.Itoa(v.MaxSpeed()),
			strconv.FormatFloat(v.Weight(), 'g', -1, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Place", "Kind", "Registration No", "Colour", "Speed", "Weight").
		Rows(rows...)
	s.println(t.String())
	s.printf("%d/%d places occupied\n", len(vehicles), s.hangar.Capacity())
}

func (s *Shell) handleSort(ctx context.Context) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.sort_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	s.hangar.Sort(ctx)
	s.println("Hangar sorted")
}

func (s *Shell) handleDraw(ctx context.Context) {
	ctx, span := s.telemetry.Tracer().Start(ctx, "shell.draw_command")
	defer span.End()

	if !s.ready(span) {
		return
	}
	frame := surface.NewText(s.hangar.Width(), s.hangar.Height(), s.scale)
	s.hangar.Draw(ctx, frame)
	s.printf("%s", frame)
}
