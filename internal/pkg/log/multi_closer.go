package log

import (
	"io"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// LogLevelHook routes a single log entry to up to three writers by level:
// Error and above to the critical writer, Debug and below to the verbose
// writer, everything else (Info/Warn, plus Error+ again for context) to the
// main writer.
type LogLevelHook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer

	formatter log.Formatter

	closed int32
}

func (hook *LogLevelHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *LogLevelHook) Fire(entry *log.Entry) error {
	if atomic.LoadInt32(&hook.closed) == 1 {
		return nil
	}

	msg, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error

	if entry.Level <= log.ErrorLevel {
		if hook.criticalWriter != nil {
			if _, err := hook.criticalWriter.Write(msg); err != nil {
				firstErr = err
			}
		}
	}

	if entry.Level >= log.DebugLevel {
		if hook.verboseWriter != nil {
			if _, err := hook.verboseWriter.Write(msg); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		// Verbose entries never reach the main log; return before falling through.
		return firstErr
	}

	if hook.mainWriter != nil {
		if _, err := hook.mainWriter.Write(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Close disables the hook; any Fire call after this is a no-op.
func (hook *LogLevelHook) Close() error {
	atomic.StoreInt32(&hook.closed, 1)
	return nil
}

// multiCloser closes every underlying log file closer exactly once, first
// disabling the hook so no writer sees a Fire after its file is closed.
type multiCloser struct {
	closers []io.Closer

	hook *LogLevelHook
}

func (mc *multiCloser) Close() error {
	if mc.hook != nil {
		mc.hook.Close()
	}

	var firstErr error
	for _, closer := range mc.closers {
		if closer == nil {
			continue
		}
		if s, ok := closer.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
