package logger

import (
	"bytes"
	"testing"
)

// TestLogger tests that errors are prefixed with the program name
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Errorf("cannot list %s: %s", "a", "permission denied")
	expected := "lls: cannot list a: permission denied\n"
	if buf.String() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, buf.String())
	}

	buf.Reset()
	log.Fatalf("cannot list %s", "root")
	expected = "lls: cannot list root\n"
	if buf.String() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, buf.String())
	}

	buf.Reset()
	log.Verbosef("skipping %s", "link")
	if buf.String() != "" {
		t.Errorf("Expected no verbose output, got '%s'", buf.String())
	}
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewVerbose(&buf)

	log.Verbosef("skipping %s (%s)", "link", "other")
	log.Errorf("cannot stat %s", "gone")
	expected := "skipping link (other)\nlls: cannot stat gone\n"
	if buf.String() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, buf.String())
	}
}

func TestQuietLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewQuiet(&buf)

	log.Errorf("cannot stat %s", "gone")
	log.Verbosef("skipping %s", "link")
	if buf.String() != "" {
		t.Errorf("Expected recoverable errors to be suppressed, got '%s'", buf.String())
	}

	log.Fatalf("cannot list %s", "root")
	expected := "lls: cannot list root\n"
	if buf.String() != expected {
		t.Errorf("Expected fatal errors to be written, got '%s'", buf.String())
	}
}
