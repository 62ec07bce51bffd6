package logrusbridge_test

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tracelet/logbridge/pkg/logrusbridge"
)

// ExampleNewHook demonstrates forwarding logrus entries to a log sink.
func ExampleNewHook() {
	provider := NewMockProvider()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(logrusbridge.NewHook("worker",
		logrusbridge.WithLoggerProvider(provider),
	))

	logger.WithField("task_id", 7).Info("task finished")

	rec := provider.Sink().Records()[0].Record
	fmt.Println("severity:", rec.Severity())
	fmt.Println("body:", rec.Body().AsString())
	fmt.Println("attributes:", rec.AttributesLen())
	// Output:
	// severity: INFO
	// body: task finished
	// attributes: 1
}
