package logger

import (
	"fmt"
	"log"
	"strings"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

var levelNames = map[string]int{
	"debug":   DEBUG,
	"info":    INFO,
	"warn":    WARNING,
	"warning": WARNING,
	"error":   ERROR,
	"silence": SILENCE,
}

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level  int
	prefix string
	out    *log.Logger
}

func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level, out: log.Default()}
}

// ParseLevel converts a level name from config or flags into a level constant.
func ParseLevel(name string) (int, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return INFO, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

// WithPrefix returns a logger sharing the same level and output which tags every line with
// the given component name.
func (l *defaultLogger) WithPrefix(prefix string) *defaultLogger {
	return &defaultLogger{level: l.level, prefix: "[" + prefix + "] ", out: l.out}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.print(DEBUG, "DEBUG", msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.print(INFO, "INFO", msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.print(WARNING, "WARN", msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.print(ERROR, "ERROR", msg, a...)
}

func (l *defaultLogger) print(level int, tag, msg string, a ...any) {
	if l.level > level {
		return
	}

	l.out.Printf(tag+" "+l.prefix+msg+"\n", a...)
}
