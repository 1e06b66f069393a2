// Package log wires logrus output for the engine process, splitting a
// single logger into up to three rotated files by level (main, critical,
// verbose) the way the rest of this module's ambient stack does it.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogDirectoryName = "logs"
	defaultLogFileExtension = "log"

	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

// logDirectoryBasePath prefixes defaultLogDirectoryName; a package var so
// tests can redirect it into a t.TempDir() without touching the real
// filesystem layout.
var logDirectoryBasePath = ""

// InitFileOptions selects which extra log files InitFileWithOptions creates
// alongside the always-present main log.
type InitFileOptions struct {
	EnableCriticalLog bool
	EnableVerboseLog  bool
	EnableConsoleLog  bool
	Level             log.Level
}

// InitFileWithOptions configures logrus to write appName's rotated log
// files under logDirectoryBasePath/logs, routed through a LogLevelHook, and
// returns the io.Closer responsible for flushing and closing them all. A
// setup failure is logged to stderr and a no-op closer is returned rather
// than failing the caller outright, matching this module's "ambient
// logging must never block startup" stance.
func InitFileWithOptions(appName string, maxAgeDays float64, opts InitFileOptions) *multiCloser {
	logDir := filepath.Join(logDirectoryBasePath, defaultLogDirectoryName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "로그 디렉토리 생성 실패: %v\n", err)
		return &multiCloser{}
	}

	level := opts.Level
	if level == 0 {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	formatter := &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")", ""
		},
	}

	if opts.EnableConsoleLog {
		log.SetFormatter(formatter)
	} else {
		log.SetOutput(os.Stdout)
		log.SetFormatter(&silentFormatter{})
	}

	mainAge := int(maxAgeDays)
	mainLogger := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fmt.Sprintf("%s.%s", appName, defaultLogFileExtension)),
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     mainAge,
		LocalTime:  true,
	}

	hook := &LogLevelHook{
		mainWriter: mainLogger,
		formatter:  formatter,
	}
	mc := &multiCloser{hook: hook}
	mc.closers = append(mc.closers, mainLogger)

	if opts.EnableCriticalLog {
		criticalLogger := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fmt.Sprintf("%s.critical.%s", appName, defaultLogFileExtension)),
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     mainAge,
			LocalTime:  true,
		}
		hook.criticalWriter = criticalLogger
		mc.closers = append(mc.closers, criticalLogger)
	}

	if opts.EnableVerboseLog {
		verboseLogger := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fmt.Sprintf("%s.verbose.%s", appName, defaultLogFileExtension)),
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     mainAge,
			LocalTime:  true,
		}
		hook.verboseWriter = verboseLogger
		mc.closers = append(mc.closers, verboseLogger)
	}

	log.AddHook(hook)

	return mc
}

// silentFormatter discards formatting work for logrus's own default output
// path; the LogLevelHook does the real formatting once per entry.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *log.Entry) ([]byte, error) {
	return nil, nil
}
