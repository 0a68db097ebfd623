package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in  string
		exp Level
	}
	specs := []spec{
		{"debug", Debug},
		{"INFO", Info},
		{" notice ", Notice},
		{"warning", Warning},
		{"error", Error},
	}

	for index, s := range specs {
		got, err := ParseLevel(s.in)
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if got != s.exp {
			t.Fatalf("[spec %d] expected level %s; got %s", index, s.exp, got)
		}
	}

	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")
	SetLevel(Warning)
	logger.Info("hidden")
	logger.Warning("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with the module name; got %q", out)
	}
}
