package logging

import (
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"

	"codex.dev/cli/internal/application/ports"
)

// NewLogger creates the process logger. Only errors are shown unless debug
// is enabled.
func NewLogger(debug bool, output io.Writer) hclog.Logger {
	level := hclog.Error
	if debug {
		level = hclog.Debug
	}
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "codex",
		Level:  level,
		Output: output,
	})
}

// Gateway adapts an hclog.Logger to ports.LoggingGateway
type Gateway struct {
	logger hclog.Logger
}

// NewGateway creates a logging gateway backed by logger
func NewGateway(logger hclog.Logger) *Gateway {
	return &Gateway{logger: logger}
}

// Log logs a message with the specified level
func (g *Gateway) Log(level ports.LogLevel, message string, fields map[string]interface{}) {
	g.logger.Log(toHclogLevel(level), message, flatten(fields)...)
}

// LogError logs an error with its context fields
func (g *Gateway) LogError(err error, message string, fields map[string]interface{}) {
	args := append(flatten(fields), "error", err)
	g.logger.Error(message, args...)
}

// SetLogLevel sets the logging level
func (g *Gateway) SetLogLevel(level ports.LogLevel) {
	g.logger.SetLevel(toHclogLevel(level))
}

// GetLogLevel returns the current logging level
func (g *Gateway) GetLogLevel() ports.LogLevel {
	switch g.logger.GetLevel() {
	case hclog.Trace, hclog.Debug:
		return ports.LogLevelDebug
	case hclog.Info:
		return ports.LogLevelInfo
	case hclog.Warn:
		return ports.LogLevelWarn
	default:
		return ports.LogLevelError
	}
}

func toHclogLevel(level ports.LogLevel) hclog.Level {
	switch level {
	case ports.LogLevelDebug:
		return hclog.Debug
	case ports.LogLevelInfo:
		return hclog.Info
	case ports.LogLevelWarn:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// flatten turns fields into hclog's alternating key/value arguments, sorted
// by key so output is stable.
func flatten(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

var _ ports.LoggingGateway = (*Gateway)(nil)
