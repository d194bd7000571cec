package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Fields map[string]interface{}

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel sets the minimum level that is written. Accepts the logrus level
// names (debug, info, warn, error, ...).
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

func entry(fields Fields) *logrus.Entry {
	e := logrus.NewEntry(logger).WithTime(time.Now().UTC())
	if len(fields) > 0 {
		e = e.WithFields(logrus.Fields(fields))
	}
	return e
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields Fields) {
	entry(fields).Debug(msg)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Fatal(msg)
}
