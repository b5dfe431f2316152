package routelog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Test_WrapPlainLogger tests that components and attached arguments end up in the records of the wrapped slog logger.
func Test_WrapPlainLogger(t *testing.T) {
	t.Parallel()

	// Arrange
	var buf bytes.Buffer
	logger := WrapPlainLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Act
	logger.WithComponent("pathrouter.test").With("route", "users").Debug("registered route", "pattern", "/users/:id")

	// Assert
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode logged record %q: %s", buf.String(), err)
	}

	delete(record, "time")

	want := map[string]any{
		"level":     "DEBUG",
		"msg":       "registered route",
		"component": "pathrouter.test",
		"route":     "users",
		"pattern":   "/users/:id",
	}

	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("logged record differs from expected (-want+got):\n%s", diff)
	}
}

// Test_WrapPlainLogger_Isolation tests that With() doesn't leak arguments into the parent logger.
func Test_WrapPlainLogger_Isolation(t *testing.T) {
	t.Parallel()

	// Arrange
	var buf bytes.Buffer
	parent := WrapPlainLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	_ = parent.With("child", true)

	// Act
	parent.Info("parent record")

	// Assert
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode logged record %q: %s", buf.String(), err)
	}

	if _, ok := record["child"]; ok {
		t.Errorf("parent logger record contains argument attached to child logger: %v", record)
	}
}

func Test_Discard(t *testing.T) {
	t.Parallel()

	logger := Discard().WithComponent("x").With("a", 1)
	logger.Error("dropped")

	if logger != Discard() {
		t.Errorf("Discard().WithComponent().With() returned a different logger %v", logger)
	}
}
