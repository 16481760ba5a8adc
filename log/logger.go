// Package log provides the leveled logger used across the module.
// Output goes to the terminal, a rotating file, or both.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer

	Name  string
	Level LogLevel

	TimeFormat string
	File       string
	NoColor    bool
	JSON       bool
	NoTerminal bool
	Rotation   Rotation
}

// Rotation configures the file sink; sizes in megabytes, age in days.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

func New(name string, level LogLevel, file string, noTerminal bool) *Logger {
	l := &Logger{
		Name:       name,
		Level:      level,
		File:       file,
		NoTerminal: noTerminal,

		TimeFormat: "2006-01-02 15:04:05",
		Rotation: Rotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
		},
	}

	l.writer = l.buildWriter()

	return l
}

func (l *Logger) buildWriter() io.Writer {
	var writers []io.Writer

	if !l.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if l.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.Rotation.MaxSize,
			MaxBackups: l.Rotation.MaxBackups,
			MaxAge:     l.Rotation.MaxAge,
			Compress:   l.Rotation.Compress,
		})
	}

	switch len(writers) {
	case 0:
		return os.Stdout
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formatted := fmt.Sprintf(msg, args...)

	if l.JSON {
		e := entry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formatted,
		}

		raw, _ := json.Marshal(e)
		fmt.Fprintf(l.writer, "%s\n", raw)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		if !l.NoTerminal && !l.NoColor {
			fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", level.color(), prefix, formatted)
		} else {
			fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
		}
	}

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

// Named returns a child logger sharing the writer under a nested name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		writer: l.writer,

		Name:  fmt.Sprintf("%s/%s", l.Name, name),
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		File:       l.File,
		NoColor:    l.NoColor,
		NoTerminal: l.NoTerminal,
		JSON:       l.JSON,
		Rotation:   l.Rotation,
	}
}
