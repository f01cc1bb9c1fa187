package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

var (
	log         = newLogger(os.Stdout)
	serviceName = "hangar-service"
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the level and service name. When dir is not empty, entries are
// also appended to dir/app.log; if that file cannot be opened only stdout is
// used.
func Configure(level, dir, service string) {
	if service != "" {
		serviceName = service
	}

	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", level).Warn("unknown log level, keeping info")
	}

	if dir == "" {
		log.SetOutput(os.Stdout)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(os.Stdout)
		return
	}
	file, err := os.OpenFile(filepath.Join(dir, "app.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.SetOutput(os.Stdout)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
}

// SetOutput redirects all entries to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// WithContext returns a logger with trace context fields (trace_id, span_id) if available
func WithContext(ctx context.Context) *logrus.Entry {
	spanCtx := trace.SpanContextFromContext(ctx)

	fields := logrus.Fields{
		"service.name": serviceName,
	}

	if spanCtx.IsValid() {
		fields["trace_id"] = spanCtx.TraceID().String()
		fields["span_id"] = spanCtx.SpanID().String()
		fields["trace_flags"] = spanCtx.TraceFlags().String()
	}

	return log.WithFields(fields)
}

func Info(ctx context.Context, msg string) {
	WithContext(ctx).Info(msg)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	WithContext(ctx).Infof(format, args...)
}

func Error(ctx context.Context, msg string) {
	WithContext(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	WithContext(ctx).Errorf(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	WithContext(ctx).Warnf(format, args...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	WithContext(ctx).Debugf(format, args...)
}

// WithFields returns a logger entry with additional custom fields
func WithFields(ctx context.Context, fields map[string]interface{}) *logrus.Entry {
	return WithContext(ctx).WithFields(fields)
}
