package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_FormatsModuleAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Module(logger, "report").WithField("category", "gpu").Warn("query failed")
	line := buf.String()
	if !strings.Contains(line, " WARN") {
		t.Errorf("line missing level: %q", line)
	}
	if !strings.Contains(line, "[    report] query failed") {
		t.Errorf("line missing module/message: %q", line)
	}
	if !strings.HasSuffix(line, "category=gpu\n") {
		t.Errorf("line missing field: %q", line)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("New(loud) err = nil, want error")
	}
}

func TestSortedKeys(t *testing.T) {
	got := sortedKeys(map[string]interface{}{"b": 1, "a": 2, "c": 3})
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("sortedKeys = %v", got)
	}
}
