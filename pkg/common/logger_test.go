package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "aquaview.xyz/water-quality-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestLoggerNaming(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(LoggerNameDashboardCore, zap.String(LoggerFieldViewCategory, LoggerCategoryGraphs))
	logger.Info("named log message")

	logOutput := buf.String()
	if !strings.Contains(logOutput, LoggerNameDashboardCore) {
		t.Errorf("expected log output to carry logger name, got: %s", logOutput)
	}
	if !strings.Contains(logOutput, LoggerCategoryGraphs) {
		t.Errorf("expected log output to carry category field, got: %s", logOutput)
	}
}
