package logging

import (
	"context"
	"maps"
	"slices"
	"testing"

	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, maps.Clone(fields))
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type captureProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (p *captureProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "contentkit.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}

	// Chained calls must not panic without a provider.
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModuleField(t *testing.T) {
	rec := &recordingLogger{}
	provider := &captureProvider{logger: rec}

	ModuleLogger(provider, catalogModule)

	if want := []string{catalogModule}; !slices.Equal(provider.requested, want) {
		t.Fatalf("expected request for %v, got %v", want, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != catalogModule {
		t.Fatalf("expected module annotation %s, got %v", catalogModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &captureProvider{logger: rec}

	ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestModuleAccessorsRequestReservedNamespaces(t *testing.T) {
	accessors := []struct {
		name   string
		call   func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{"catalog", CatalogLogger, catalogModule},
		{"resolver", ResolverLogger, resolverModule},
		{"guides", GuidesLogger, guidesModule},
		{"sources", SourcesLogger, sourcesModule},
	}

	for _, tc := range accessors {
		t.Run(tc.name, func(t *testing.T) {
			provider := &captureProvider{logger: &recordingLogger{}}
			tc.call(provider)
			if len(provider.requested) == 0 || provider.requested[0] != tc.module {
				t.Fatalf("expected %s request, got %v", tc.module, provider.requested)
			}
		})
	}
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithDocumentContext(rec, "card-name", "  ", "memory")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields["domain"] != "card-name" {
		t.Fatalf("expected domain field, got %v", fields)
	}
	if _, ok := fields["locale"]; ok {
		t.Fatalf("expected blank locale to be skipped, got %v", fields)
	}
	if fields["source"] != "memory" {
		t.Fatalf("expected source field, got %v", fields)
	}
}
