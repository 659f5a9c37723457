package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_ServiceField(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Service: "dish-service", Output: &buf})
	log.Info().Msg("started")

	out := buf.String()
	if !strings.Contains(out, `"service":"dish-service"`) {
		t.Fatalf("service field missing from output: %s", out)
	}
}

func TestInit_NoServiceField(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})
	log.Info().Msg("started")

	if strings.Contains(buf.String(), `"service"`) {
		t.Fatalf("unexpected service field: %s", buf.String())
	}
}

func TestInit_Singleton(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	log := Init(Options{Level: "info", Output: &second, Service: "other"})
	log.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger")
	}
	if !strings.Contains(first.String(), "hello") {
		t.Fatalf("expected output on the first writer, got: %s", first.String())
	}
}
