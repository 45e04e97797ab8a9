// Package base
package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	logFile  *os.File
	console  io.Writer
	mu       sync.Mutex
	colorMap map[slog.Level]*color.Color
}

func NewLogger() *Logger {
	return &Logger{
		level:   new(slog.LevelVar),
		console: color.Output,
		colorMap: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgHiBlack),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
	}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}

	var writer io.Writer = io.Discard
	if err := os.MkdirAll(filepath.Dir(*global.LogFilePath), global.DefaultDirectoryPermission); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "can not create log directory: %v\n", err)
	} else if file, err := os.OpenFile(*global.LogFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "can not open log file: %v\n", err)
	} else {
		l.logFile = file
		writer = file
	}

	l.logger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: l.level}))
	slog.SetDefault(l.logger)
}

type loggerShutdownCallback struct {
	logger *Logger
}

func (callback *loggerShutdownCallback) Invoke(_ context.Context) error {
	callback.logger.mu.Lock()
	defer callback.logger.mu.Unlock()
	if callback.logger.logFile == nil {
		return nil
	}
	if err := callback.logger.logFile.Sync(); err != nil {
		return err
	}
	return callback.logger.logFile.Close()
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logger: l}
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	if l.logger == nil || !l.logger.Enabled(context.Background(), level) {
		return
	}
	if len(v) > 0 {
		msg = fmt.Sprint(append([]interface{}{msg, " "}, v...)...)
	}
	l.mu.Lock()
	_, _ = l.colorMap[level].Fprintf(l.console, "[%-5s] ", level.String())
	_, _ = fmt.Fprintln(l.console, msg)
	l.mu.Unlock()
	l.logger.Log(context.Background(), level, msg)
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.log(slog.LevelDebug, msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.log(slog.LevelDebug, fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, v ...interface{}) { l.log(slog.LevelInfo, msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.log(slog.LevelInfo, fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, v ...interface{}) { l.log(slog.LevelWarn, msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.log(slog.LevelWarn, fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, v ...interface{}) { l.log(slog.LevelError, msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.log(slog.LevelError, fmt.Sprintf(msg, v...)) }

func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.log(slog.LevelError, "FATAL "+msg, v...)
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.log(slog.LevelError, "FATAL "+fmt.Sprintf(msg, v...))
}
