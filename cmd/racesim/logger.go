package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
)

// stdLogger adapts the standard logger to runtime.Logger so the race engine
// logs the same way outside a Nakama server.
type stdLogger struct {
	out    *log.Logger
	debug  bool
	fields map[string]interface{}
}

func newStdLogger(out *log.Logger, debug bool) *stdLogger {
	return &stdLogger{out: out, debug: debug, fields: map[string]interface{}{}}
}

func (l *stdLogger) Debug(format string, v ...interface{}) {
	if l.debug {
		l.print("DEBUG", format, v...)
	}
}

func (l *stdLogger) Info(format string, v ...interface{}) {
	l.print("INFO", format, v...)
}

func (l *stdLogger) Warn(format string, v ...interface{}) {
	l.print("WARN", format, v...)
}

func (l *stdLogger) Error(format string, v ...interface{}) {
	l.print("ERROR", format, v...)
}

func (l *stdLogger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *stdLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := l.Fields()
	for k, v := range fields {
		merged[k] = v
	}
	return &stdLogger{out: l.out, debug: l.debug, fields: merged}
}

func (l *stdLogger) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

func (l *stdLogger) print(level, format string, v ...interface{}) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(fmt.Sprintf(format, v...))

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}
	l.out.Print(b.String())
}
