package storage

import "log"

// badgerLogger routes badger's log output into a standard logger.
// Info and debug lines are dropped unless verbose is set.
type badgerLogger struct {
	l       *log.Logger
	verbose bool
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Printf("badger ERROR: "+format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Printf("badger WARNING: "+format, args...)
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	if b.verbose {
		b.l.Printf("badger INFO: "+format, args...)
	}
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	if b.verbose {
		b.l.Printf("badger DEBUG: "+format, args...)
	}
}
