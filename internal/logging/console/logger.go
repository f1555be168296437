package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Level represents the severity attached to a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// String renders the severity label used in console output. Unknown levels
// fall back to INFO.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// Options configures the console logger provider.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

// sink owns the output stream shared by every logger the provider hands out.
// Writes are serialized so concurrent loggers never interleave entries.
type sink struct {
	mu       sync.Mutex
	out      io.Writer
	clock    func() time.Time
	minLevel Level
}

var _ interfaces.LoggerProvider = (*sink)(nil)

// NewProvider constructs a console-backed logger provider. Callers can
// override defaults via Options, otherwise entries are written to stdout with
// a minimum severity of DEBUG.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{
		out:      opts.Writer,
		clock:    opts.TimeFunc,
		minLevel: LevelDebug,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if opts.MinLevel != nil {
		s.minLevel = *opts.MinLevel
	}
	return s
}

func (s *sink) GetLogger(name string) interfaces.Logger {
	return &logger{
		sink:   s,
		fields: map[string]any{"logger": name},
	}
}

func (s *sink) write(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, entry)
}

type logger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*logger)(nil)
	_ interfaces.FieldsLogger = (*logger)(nil)
)

func (l *logger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args...) }
func (l *logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }
func (l *logger) Fatal(msg string, args ...any) { l.log(LevelFatal, msg, args...) }

func (l *logger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &logger{sink: l.sink, fields: merged, ctx: l.ctx}
}

func (l *logger) WithContext(ctx context.Context) interfaces.Logger {
	return &logger{sink: l.sink, fields: maps.Clone(l.fields), ctx: ctx}
}

func (l *logger) log(level Level, msg string, args ...any) {
	if level < l.sink.minLevel {
		return
	}

	// Precedence: bound fields, then context fields, then per-call pairs.
	fields := make(map[string]any, len(l.fields)+len(args)/2+1)
	maps.Copy(fields, l.fields)
	maps.Copy(fields, logging.ContextFields(l.ctx))
	maps.Copy(fields, pairFields(args))

	l.sink.write(formatEntry(l.sink.clock().UTC(), level, msg, fields))
}

// pairFields folds variadic key/value arguments into a field map. Keys must be
// non-empty strings; anything else becomes a positional field so the value is
// never dropped, including a trailing argument without a pair.
func pairFields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	fields := make(map[string]any, (len(args)+1)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			fields[positionalKey(i/2)] = args[i+1]
			continue
		}
		fields[key] = args[i+1]
	}
	if len(args)%2 != 0 {
		fields[positionalKey(len(args)-1)] = args[len(args)-1]
	}
	return fields
}

func positionalKey(position int) string {
	return "field_" + strconv.Itoa(position)
}

func formatEntry(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.Grow(48 + len(msg) + len(fields)*24)
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(renderValue(fields[key]))
	}
	return b.String()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return escape(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return escape(v.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		if v == nil {
			return "null"
		}
		return escape(v.UTC().Format(time.RFC3339Nano))
	case error:
		return escape(v.Error())
	case fmt.Stringer:
		return escape(v.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return escape(fmt.Sprint(v))
	}
}

// escape quotes values containing spaces, control characters, or '=' so
// entries stay machine-splittable on whitespace.
func escape(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsFunc(value, func(r rune) bool { return r <= 0x20 || r == '=' }) {
		return strconv.Quote(value)
	}
	return value
}
