// Package zapbridge lets zap-based applications route their log
// entries through a prettylog console handler, so zap call sites and
// slog call sites produce visually identical lines.
//
//	h := handler.NewConsoleHandler(handler.ConsoleConfig{Min: core.InfoLevel})
//	log := zap.New(zapbridge.New(h))
//	log.Named("db").Info("connected")
//
// The bridge implements zapcore.Core directly rather than wrapping an
// existing core, because per-target filtering needs the logger name,
// which is only visible in Check. Structured fields are folded into
// the message text in sorted key order.
package zapbridge
