package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario represents a replayable sequence of log events.
// Each step names the bridge it travels through, so one file can exercise
// the slog handler, the logrus hook, and the facade side by side.
type Scenario struct {
	// Name identifies the scenario and becomes the span name for in-span steps.
	Name  string `yaml:"name" validate:"required"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Step represents a single replayed log event.
type Step struct {
	// Bridge selects the API the event enters through.
	Bridge string `yaml:"bridge" validate:"required,oneof=slog logrus facade"`
	// Level is the source level name. Fatal is excluded because replaying
	// it would terminate the demo.
	Level string `yaml:"level" validate:"required,oneof=trace debug info warn error"`
	// Message is the log message body.
	Message string `yaml:"message" validate:"required"`
	// Fields holds structured key-value pairs attached to the event.
	Fields map[string]any `yaml:"fields"`
	// InSpan replays the event inside a live span so the record carries
	// trace correlation.
	InSpan bool `yaml:"in_span"`
}

// LoadScenario loads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scenario")
	}
	defer f.Close()

	var sc Scenario
	if err := yaml.NewDecoder(f).Decode(&sc); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}

	if err := validator.New().Struct(&sc); err != nil {
		return nil, errors.Wrap(err, "validate scenario")
	}

	return &sc, nil
}

// DefaultScenario returns the built-in scenario used when no file is
// configured. It sends at least one event through every bridge and mixes
// plain and in-span steps.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name: "checkout",
		Steps: []Step{
			{
				Bridge:  "slog",
				Level:   "info",
				Message: "order received",
				Fields:  map[string]any{"order_id": "ord-1042", "items": 3},
			},
			{
				Bridge:  "slog",
				Level:   "debug",
				Message: "inventory reserved",
				Fields:  map[string]any{"order_id": "ord-1042", "warehouse": "eu-1"},
				InSpan:  true,
			},
			{
				Bridge:  "logrus",
				Level:   "info",
				Message: "payment authorized",
				Fields:  map[string]any{"order_id": "ord-1042", "amount": 129.90, "currency": "EUR"},
				InSpan:  true,
			},
			{
				Bridge:  "logrus",
				Level:   "warn",
				Message: "payment provider slow",
				Fields:  map[string]any{"provider": "acme-pay", "elapsed_ms": 870},
			},
			{
				Bridge:  "facade",
				Level:   "info",
				Message: "order confirmed",
				Fields:  map[string]any{"order_id": "ord-1042", "notified": true},
				InSpan:  true,
			},
			{
				Bridge:  "facade",
				Level:   "error",
				Message: "receipt email failed",
				Fields:  map[string]any{"order_id": "ord-1042", "retry_in": "30s"},
			},
		},
	}
}
