// Package logging 建立診斷用的結構化日誌（zap）。
// 診斷日誌一律寫到 stderr，不會混入使用者看到的交易紀錄。
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 設定 logger 的輸出。
type Options struct {
	// Level 為 zap 等級名稱：debug、info、warn、error。
	Level string
	// JSON 為 true 時輸出 JSON，否則為 console 格式。
	JSON bool
	// Output 預設為 os.Stderr。
	Output io.Writer
}

// New 依 Options 建立 logger。
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	return zap.New(core), nil
}
