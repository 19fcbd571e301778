// Package logging builds the process logger
// A terminal game owns stdout, so logs only ever go to a file and only with -debug
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogDir holds the log file, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active log file
	LogFileName = "vi-breakout.log"

	// MaxLogSize triggers rotation of an existing log on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Setup returns a nop logger unless debug is set
// With debug it writes JSON to LogDir/LogFileName, rotating an oversized previous file,
// and tags every entry with a per-process session id
// The returned close function flushes and closes the file
func Setup(debug bool) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(LogDir, LogFileName)
	if err := rotate(logPath); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.DebugLevel)

	logger := zap.New(core).With(zap.String("session", uuid.NewString()))
	closeFn := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}

// rotate renames an oversized log file to a timestamped name
func rotate(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxLogSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s.%s%s", logPath[:len(logPath)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
