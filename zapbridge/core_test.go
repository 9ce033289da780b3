package zapbridge

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/handler"
)

func newTestCore(cfg handler.ConsoleConfig) (*Core, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	cfg.Out = &out
	cfg.Err = &errBuf
	return New(handler.NewConsoleHandler(cfg)), &out, &errBuf
}

func TestCore_Basic(t *testing.T) {
	c, out, _ := newTestCore(handler.ConsoleConfig{Min: core.TraceLevel})
	log := zap.New(c)

	log.Info("zap says hello")

	if !strings.Contains(out.String(), "[INFO ] zap says hello") {
		t.Errorf("Expected info line, got: %q", out.String())
	}
}

func TestCore_Routing(t *testing.T) {
	c, out, errBuf := newTestCore(handler.ConsoleConfig{Min: core.TraceLevel})
	log := zap.New(c)

	log.Debug("low")
	log.Error("high")

	if !strings.Contains(out.String(), "[DEBUG] low") {
		t.Errorf("Expected debug on standard stream, got: %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "[ERROR] high") {
		t.Errorf("Expected error on error stream, got: %q", errBuf.String())
	}
}

func TestCore_NamedLoggerTarget(t *testing.T) {
	c, out, _ := newTestCore(handler.ConsoleConfig{
		Min: core.ErrorLevel,
		Overrides: []handler.TargetOverride{
			{Target: "db", Min: core.DebugLevel},
		},
	})
	log := zap.New(c)

	log.Named("db").Debug("pool warmed")
	log.Named("net").Debug("dialing")

	stdout := out.String()
	if !strings.Contains(stdout, "pool warmed") {
		t.Errorf("Expected named 'db' logger accepted via override, got: %q", stdout)
	}
	if strings.Contains(stdout, "dialing") {
		t.Errorf("Expected named 'net' logger dropped, got: %q", stdout)
	}
}

func TestCore_FieldsFolded(t *testing.T) {
	c, out, _ := newTestCore(handler.ConsoleConfig{Min: core.TraceLevel})
	log := zap.New(c).With(zap.String("request_id", "abc"))

	log.Info("done", zap.Int("status", 200))

	if !strings.Contains(out.String(), "done request_id=abc status=200") {
		t.Errorf("Expected fields folded in key order, got: %q", out.String())
	}
}

func TestCore_FilteredBeforeWrite(t *testing.T) {
	c, out, errBuf := newTestCore(handler.ConsoleConfig{Min: core.WarnLevel})
	log := zap.New(c)

	log.Info("invisible")

	if out.Len() != 0 || errBuf.Len() != 0 {
		t.Errorf("Filtered entry produced output: out=%q err=%q", out.String(), errBuf.String())
	}
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		zap  zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel, core.DebugLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarnLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.ErrorLevel},
		{zapcore.PanicLevel, core.PanicLevel},
		{zapcore.FatalLevel, core.PanicLevel},
	}

	for _, tt := range tests {
		if got := zapLevelToCore(tt.zap); got != tt.want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", tt.zap, got, tt.want)
		}
	}
}
