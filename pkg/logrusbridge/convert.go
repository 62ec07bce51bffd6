package logrusbridge

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/log"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

// convertLevel maps a logrus level onto the OpenTelemetry severity range.
// Panic maps above Fatal: a panicking process is further gone than one
// exiting deliberately.
func convertLevel(l logrus.Level) log.Severity {
	switch l {
	case logrus.PanicLevel:
		return log.SeverityFatal4
	case logrus.FatalLevel:
		return log.SeverityFatal
	case logrus.ErrorLevel:
		return log.SeverityError
	case logrus.WarnLevel:
		return log.SeverityWarn
	case logrus.InfoLevel:
		return log.SeverityInfo
	case logrus.DebugLevel:
		return log.SeverityDebug
	case logrus.TraceLevel:
		return log.SeverityTrace
	default:
		return log.SeverityUndefined
	}
}

// convertValue coerces a logrus field value. In structured mode composite
// values convert structurally (slices and maps keep their shape). In ad hoc
// mode scalars stay native and everything else degrades to a string, JSON
// when the value marshals and a verbose fmt rendering when it does not.
func convertValue(v any, structured bool) log.Value {
	if structured {
		return otelconv.Value(v)
	}
	return adHocValue(v)
}

func adHocValue(v any) log.Value {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return otelconv.Value(v)
	}

	if err, ok := v.(error); ok {
		return log.StringValue(err.Error())
	}
	if stringer, ok := v.(fmt.Stringer); ok {
		return log.StringValue(stringer.String())
	}
	if b, err := json.Marshal(v); b != nil && err == nil {
		return log.StringValue(string(b))
	}
	return log.StringValue(fmt.Sprintf("%+v", v))
}
