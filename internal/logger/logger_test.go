package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestReleaseMode() {
	s.T().Setenv("GIN_MODE", "release")
	var buf bytes.Buffer
	l := New(&buf)
	l.WithField("component", "test").Info("hello")
	l.Debug("hidden")

	s.Contains(buf.String(), `"msg":"hello"`)
	s.Contains(buf.String(), `"component":"test"`)
	s.NotContains(buf.String(), "hidden")
}

func (s *LoggerTestSuite) TestWithFile() {
	s.T().Setenv("GIN_MODE", "release")
	path := filepath.Join(s.T().TempDir(), "wepay.log")
	var buf bytes.Buffer

	l, closer := NewWithFile(&buf, path)
	l.Info("to both")
	s.Require().NoError(closer.Close())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), "to both")
	s.Contains(buf.String(), "to both")
}
