// ABOUTME: Tests for logger setup and level parsing.
// ABOUTME: Covers file rotation output, stderr fan-out and JSON formatting.
package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(" INFO "))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(""))
	assert.Equal(t, logrus.WarnLevel, GetLevel("chatty"))
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("warn"))
	assert.False(t, ValidLevel("chatty"))
}

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	cw := NewCombinedWriter(&a, failingWriter{}, &b)

	n, err := cw.Write([]byte("hello"))
	assert.Equal(t, 10, n)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestSetup_LogFile(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	path := filepath.Join(t.TempDir(), "runlog")
	Setup(LoggerSetupParams{
		LogFileName:   path,
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	logrus.WithField("date", "2024-03-04").Info("run stored")

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"date":"2024-03-04"`))
}
