package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"go.trai.ch/sassimport/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("test initialization")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "test initialization") {
		t.Errorf("Expected logger to log 'test initialization', got: %s", output)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		level string
		text  string
	}{
		{"info", func(l *logger.Logger) { l.Info("some message") }, "INFO", "some message"},
		{"warn", func(l *logger.Logger) { l.Warn("Could not import `missing`") }, "WARN", "Could not import `missing`"},
		{"error", func(l *logger.Logger) { l.Error(os.ErrPermission) }, "ERROR", "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewWithWriter(&buf))

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("Expected output to contain %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, tt.text) {
				t.Errorf("Expected output to contain %q, got: %s", tt.text, output)
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.SetLevel(slog.LevelError)
	lg.Info("hidden")
	lg.Warn("hidden too")

	if buf.Len() != 0 {
		t.Errorf("Expected nothing below ERROR to be written, got: %s", buf.String())
	}

	lg.Error(os.ErrNotExist)
	if !strings.Contains(buf.String(), "file does not exist") {
		t.Errorf("Expected error to be written, got: %s", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	if !strings.Contains(first.String(), "one") || strings.Contains(first.String(), "two") {
		t.Errorf("Unexpected first output: %s", first.String())
	}
	if !strings.Contains(second.String(), "two") {
		t.Errorf("Expected second output to contain 'two', got: %s", second.String())
	}
}
