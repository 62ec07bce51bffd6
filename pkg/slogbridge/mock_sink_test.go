package slogbridge_test

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
)

var _ log.LoggerProvider = (*MockProvider)(nil)
var _ log.Logger = (*MockSink)(nil)

// MockProvider is a test double LoggerProvider. It hands out MockSinks and
// records the scope name and configuration each sink was requested with, so
// tests can verify how the bridge binds its instrumentation scope.
type MockProvider struct {
	embedded.LoggerProvider

	mu        sync.Mutex
	sink      *MockSink
	lastScope string
	lastCfg   log.LoggerConfig
}

// NewMockProvider creates a provider backed by a single shared MockSink.
func NewMockProvider() *MockProvider {
	return &MockProvider{sink: NewMockSink()}
}

// Logger returns the shared sink and captures the requested scope.
func (mp *MockProvider) Logger(name string, opts ...log.LoggerOption) log.Logger {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.lastScope = name
	mp.lastCfg = log.NewLoggerConfig(opts...)
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

// LastConfig returns the configuration of the most recent Logger call.
func (mp *MockProvider) LastConfig() log.LoggerConfig {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.lastCfg
}

// EmittedRecord is a captured emission: the record together with the
// context it traveled with.
type EmittedRecord struct {
	Ctx    context.Context
	Record log.Record
}

// MockSink is a test double log.Logger. It captures emitted records, counts
// Enabled consultations and answers them against a configurable severity
// floor. All methods are safe for concurrent use.
type MockSink struct {
	embedded.Logger

	mu           sync.Mutex
	minSeverity  log.Severity
	enabledCalls int
	records      []EmittedRecord
}

// NewMockSink creates a sink that accepts every severity.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// SetMinSeverity sets the severity floor Enabled answers against.
func (ms *MockSink) SetMinSeverity(s log.Severity) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.minSeverity = s
}

// Emit captures the record and its context.
func (ms *MockSink) Emit(ctx context.Context, r log.Record) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records = append(ms.records, EmittedRecord{Ctx: ctx, Record: r})
}

// Enabled counts the consultation and compares against the severity floor.
func (ms *MockSink) Enabled(_ context.Context, param log.EnabledParameters) bool {
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

// EnabledCount returns how many times Enabled was consulted.
func (ms *MockSink) EnabledCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.enabledCalls
}

// LastRecord returns the most recently captured record. It fails the test
// when nothing was emitted.
func (ms *MockSink) LastRecord(t testingT) log.Record {
	t.Helper()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.records) == 0 {
		t.Fatal("no records emitted")
	}
	return ms.records[len(ms.records)-1].Record
}

// attrMap flattens a record's attributes into a map for assertions.
func attrMap(r log.Record) map[string]log.Value {
	m := make(map[string]log.Value, r.AttributesLen())
	r.WalkAttributes(func(kv log.KeyValue) bool {
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
