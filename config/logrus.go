package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

// NewAuditLogger builds the append-only action logger for one entity type.
// Entries are write-only observability records; nothing in the application
// reads them back. When the log file cannot be opened the logger falls back
// to stdout so the entries are not lost.
func NewAuditLogger(path string, mirrorStdout bool) *logrus.Logger {
	audit := logrus.New()
	audit.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		GetLogrusInstance().Errorf("could not create audit log directory for %s: %v", path, err)
		return audit
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		GetLogrusInstance().Errorf("could not open audit log %s: %v", path, err)
		return audit
	}

	if mirrorStdout {
		audit.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		audit.SetOutput(file)
	}
	return audit
}
