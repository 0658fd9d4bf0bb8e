package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/lode/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.(*logger.Logger).SetOutput(&buf)

	lg.Info("resolved 3 modules")

	out := buf.String()
	if !strings.Contains(out, "resolved 3 modules") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected INFO level in output, got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.(*logger.Logger).SetOutput(&buf)

	lg.Warn("lock file out of date")

	out := buf.String()
	if !strings.Contains(out, "lock file out of date") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected WARN level in output, got: %s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.(*logger.Logger).SetOutput(&buf)

	lg.Error(errors.New("integrity mismatch"))

	out := buf.String()
	if !strings.Contains(out, "integrity mismatch") {
		t.Errorf("expected error in output, got: %s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected ERROR level in output, got: %s", out)
	}
}
