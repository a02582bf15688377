package layout

import "log"

// Logger is the logging dependency of the generator.
type Logger interface {
	Printf(format string, v ...interface{})
}

// StdLogger implements Logger using the standard log package
type StdLogger struct{}

func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

func (l *StdLogger) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
