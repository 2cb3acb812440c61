package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 5
	logFileMaxAgeDays = 30
)

// New создаёт логгер приложения. В релизе (GIN_MODE=release) пишет JSON с уровня info,
// в остальных случаях текст с уровня debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}

// NewWithFile то же, что New, но дополнительно пишет в ротируемый файл path. Пустой path означает только output.
// Возвращаемый closer закрывает файл.
func NewWithFile(output io.Writer, path string) (*logrus.Logger, io.Closer) {
	if path == "" {
		return New(output), io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
	return New(io.MultiWriter(output, file)), file
}
