// ABOUTME: Process-wide logrus setup for the CLI and the MCP server.
// ABOUTME: Logs go to stderr, a rotating file, or both.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStderr   bool
	LogLevel      string
	LogFormatJSON bool
}

// Setup configures the standard logrus logger. Stdout is never used: the MCP
// server speaks its protocol there.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stderr)
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	}

	var out io.Writer = lumberJackLogger
	if params.LogToStderr {
		out = NewCombinedWriter(os.Stderr, lumberJackLogger)
	}
	logrus.SetOutput(out)
	logrus.WithField("file", params.LogFileName).Debug("logging to file")
}

// GetLevel maps a level name to a logrus level. Unknown names mean warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.WarnLevel
	}
}

// ValidLevel reports whether GetLevel knows the name.
func ValidLevel(level string) bool {
	_, err := logrus.ParseLevel(strings.TrimSpace(level))
	return err == nil
}
