package log

import "strings"

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
	Fatal
)

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case Debug:
		return "\033[34m"
	case Info:
		return "\033[32m"
	case Warn:
		return "\033[33m"
	case Error:
		return "\033[31m"
	case Fatal:
		return "\033[35m"
	default:
		return "\033[0m"
	}
}

// Parse maps a level name to its LogLevel, defaulting to Info for unknown
// input so a bad config value never silences logging entirely.
func Parse(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return Debug
	case "INFO":
		return Info
	case "WARN":
		return Warn
	case "ERROR":
		return Error
	case "FATAL":
		return Fatal
	default:
		return Info
	}
}
