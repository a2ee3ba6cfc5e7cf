// Package bhlog is the leveled logger used at the orchestration
// boundaries of a render: the start and end of a run. The core packages (metric, geodesic, disk,
// raytracer's per-pixel trace) never log; logging here is strictly an
// outer-loop concern.
package bhlog

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of go-logging's interface this module uses.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger, e.g. bhlog.New("raytracer").
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output writer.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum level that reaches the sink.
func SetLevel(level Level) {
	var loggingLevel logging.Level

	switch level {
	case Debug:
		loggingLevel = logging.DEBUG
	case Info:
		loggingLevel = logging.INFO
	case Notice:
		loggingLevel = logging.NOTICE
	case Warning:
		loggingLevel = logging.WARNING
	case Error:
		loggingLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggingLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
