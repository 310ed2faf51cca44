// Package logging configures the logrus logger used for diagnostics.
// Diagnostics go to stderr so stdout carries only the report.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter writes one line per entry: [LEVEL timestamp] [module] message.
// Remaining fields are appended as key=value pairs.
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")

	var levelText string
	switch entry.Level {
	case logrus.InfoLevel:
		levelText = " INFO"
	case logrus.WarnLevel:
		levelText = " WARN"
	default:
		levelText = strings.ToUpper(entry.Level.String())
	}

	module := "main"
	if m, ok := entry.Data["module"].(string); ok {
		module = m
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s %s] [%10s] %s", levelText, timestamp, module, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		if k == "module" {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New returns a logger writing to out at the named level ("warn", "debug", ...).
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&Formatter{})
	return logger, nil
}

// Module returns an entry tagged with the given module name.
func Module(logger *logrus.Logger, module string) *logrus.Entry {
	return logger.WithField("module", module)
}

// Discard returns an entry that drops everything, for tests and callers
// that have no logger.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
