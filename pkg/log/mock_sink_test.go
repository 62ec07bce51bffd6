package log_test

import (
	"context"
	"sync"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
)

var _ otellog.LoggerProvider = (*MockProvider)(nil)
var _ otellog.Logger = (*MockSink)(nil)

// MockProvider is a test double LoggerProvider. It hands out MockSinks and
// records the scope name each sink was requested with, so tests can verify
// how OtelLogger binds its instrumentation scope.
type MockProvider struct {
	embedded.LoggerProvider

	mu        sync.Mutex
	sink      *MockSink
	lastScope string
}

// NewMockProvider creates a provider backed by a single shared MockSink.
func NewMockProvider() *MockProvider {
	return &MockProvider{sink: NewMockSink()}
}

// Logger returns the shared sink and captures the requested scope.
func (mp *MockProvider) Logger(name string, opts ...otellog.LoggerOption) otellog.Logger {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.lastScope = name
	return mp.sink
}

// Sink returns the shared sink for assertions.
func (mp *MockProvider) Sink() *MockSink {
	return mp.sink
}

// LastScope returns the scope name of the most recent Logger call.
func (mp *MockProvider) LastScope() string {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.lastScope
}

// EmittedRecord is a captured emission: the record together with the
// context it traveled with.
type EmittedRecord struct {
	Ctx    context.Context
	Record otellog.Record
}

// MockSink is a test double OpenTelemetry logger. It captures emitted
// records, counts Enabled consultations and answers them against a
// configurable severity floor. All methods are safe for concurrent use.
type MockSink struct {
	embedded.Logger

	mu           sync.Mutex
	minSeverity  otellog.Severity
	enabledCalls int
	records      []EmittedRecord
}

// NewMockSink creates a sink that accepts every severity.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// SetMinSeverity sets the severity floor Enabled answers against.
func (ms *MockSink) SetMinSeverity(s otellog.Severity) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.minSeverity = s
}

// Emit captures the record and its context.
func (ms *MockSink) Emit(ctx context.Context, r otellog.Record) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records = append(ms.records, EmittedRecord{Ctx: ctx, Record: r})
}

// Enabled counts the consultation and compares against the severity floor.
func (ms *MockSink) Enabled(_ context.Context, param otellog.EnabledParameters) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.enabledCalls++
	return param.Severity >= ms.minSeverity
}

// Records returns a copy of all captured emissions.
func (ms *MockSink) Records() []EmittedRecord {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := make([]EmittedRecord, len(ms.records))
	copy(out, ms.records)
	return out
}

// EmitCount returns how many records were emitted.
func (ms *MockSink) EmitCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.records)
}

// LastRecord returns the most recently captured record. It fails the test
// when nothing was emitted.
func (ms *MockSink) LastRecord(t testingT) otellog.Record {
	t.Helper()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.records) == 0 {
		t.Fatal("no records emitted")
	}
	return ms.records[len(ms.records)-1].Record
}

// attrMap flattens a record's attributes into a map for assertions.
func attrMap(r otellog.Record) map[string]otellog.Value {
	m := make(map[string]otellog.Value, r.AttributesLen())
	r.WalkAttributes(func(kv otellog.KeyValue) bool {
		m[kv.Key] = kv.Value
		return true
	})
	return m
}

// testingT is the subset of *testing.T the mock helpers need.
type testingT interface {
	Helper()
	Fatal(args ...any)
}
