package unidrive

import (
	"github.com/deotya/unidrive/drives"
	"github.com/deotya/unidrive/log"
)

type NamespaceOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool

	Enumerator drives.Enumerator
	Reader     DirectoryReader
}

type NamespaceOption func(*NamespaceOptions) error

func newDefaultNamespaceOptions() *NamespaceOptions {
	return &NamespaceOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(level log.LogLevel) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.LogLevel = level
		return nil
	}
}

func WithLogFile(file string) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.LogFile = file
		return nil
	}
}

func WithoutTerminalLog() NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithEnumerator replaces the host volume-table enumerator, e.g. with a
// drives.Static set on hosts without drive letters.
func WithEnumerator(enumerator drives.Enumerator) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.Enumerator = enumerator
		return nil
	}
}

// WithDirectoryReader replaces the native directory reader used for listing
// and stat below the virtual root.
func WithDirectoryReader(reader DirectoryReader) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.Reader = reader
		return nil
	}
}
