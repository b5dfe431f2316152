package routetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/renbou/pathrouter/routelog"
)

// Logger returns a logger writing all records to the test log.
func Logger(t testing.TB) routelog.Logger {
	return routelog.WrapPlainLogger(&testLogger{t})
}

type testLogger struct {
	t testing.TB
}

func (l *testLogger) Debug(msg string, args ...any) {
	l.t.Logf("[DEBUG] %s: %s", msg, l.fmt(args...))
}

func (l *testLogger) Info(msg string, args ...any) {
	l.t.Logf("[INFO] %s: %s", msg, l.fmt(args...))
}

func (l *testLogger) Warn(msg string, args ...any) {
	l.t.Logf("[WARN] %s: %s", msg, l.fmt(args...))
}

func (l *testLogger) Error(msg string, args ...any) {
	l.t.Logf("[ERROR] %s: %s", msg, l.fmt(args...))
}

func (l *testLogger) fmt(args ...any) string {
	pairs := make([]string, 0, (len(args)+1)/2)

	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		} else {
			pairs = append(pairs, fmt.Sprint(args[i]))
		}
	}

	return strings.Join(pairs, ", ")
}
