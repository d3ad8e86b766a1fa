package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestCombine(t *testing.T) {
	var first, second []string

	combined := Combine(
		func(message string) { first = append(first, message) },
		func(message string) { second = append(second, message) },
	)

	combined("Low hit rate: 0.10 (threshold: 0.50)")

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Expected both callbacks to fire once, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Errorf("Expected identical messages, got %q and %q", first[0], second[0])
	}
}

func TestCombineEmpty(t *testing.T) {
	// Combining nothing yields a callback that does nothing
	Combine()("message")
}

func TestLoggerNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	Logger(logger)("High miss rate: 0.80 (threshold: 0.50)")

	output := buf.String()
	if !strings.Contains(output, "cache alert") {
		t.Errorf("Expected alert prefix in output, got %q", output)
	}
	if !strings.Contains(output, "High miss rate") {
		t.Errorf("Expected alert message in output, got %q", output)
	}
}

func TestRedisNotifierBuilders(t *testing.T) {
	notifier := NewRedisNotifier(nil, "cache-alerts")

	if notifier.channel != "cache-alerts" {
		t.Errorf("Expected channel cache-alerts, got %q", notifier.channel)
	}
	if notifier.timeout != defaultPublishTimeout {
		t.Errorf("Expected default timeout, got %v", notifier.timeout)
	}

	notifier.WithTimeout(0).WithLogger(log.Default())
	if notifier.timeout != 0 {
		t.Errorf("Expected timeout override, got %v", notifier.timeout)
	}

	// Fn adapts the notifier to the callback shape without invoking it
	if notifier.Fn() == nil {
		t.Error("Expected a non-nil callback")
	}
}
