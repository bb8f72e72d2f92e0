package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	Logger  = newLogger(io.Discard)
	logFile *os.File
	mu      sync.Mutex

	sessionID = uuid.New().String()
)

func newLogger(out io.Writer) *log.Entry {
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(log.DebugLevel)
	l.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l.WithField("session", sessionID)
}

// Initialize points the logger at <logDir>/debug.log.
// Until it is called, log output is discarded.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f)
	Logger.WithField("path", logPath).Debug("Logger initialized")

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = newLogger(io.Discard)
		return err
	}
	return nil
}
