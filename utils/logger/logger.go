package logger

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

type logPair struct {
	logFn   func(...any)
	obj     string
	msg     string
	flushed chan struct{}
}

const (
	logSize   = 1000
	objLength = 20
)

var (
	logCh    = make(chan logPair, logSize)
	initOnce sync.Once
	started  atomic.Bool
	dropped  atomic.Uint64
)

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		objStr = reflect.TypeOf(obj).Name()
	}
	if len(objStr) > objLength {
		objStr = objStr[:objLength]
	}
	return
}

// Init sets the level and starts the goroutine that prints queued records.
// Records produced before Init are dropped once the queue is full.
func Init(lvl logrus.Level) {
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/02/01 15:04:05",
	})

	initOnce.Do(func() {
		started.Store(true)
		go func() {
			sb := new(bytes.Buffer)
			for logPair := range logCh {
				if logPair.flushed != nil {
					close(logPair.flushed)
					continue
				}
				fmt.Fprintf(sb, "|%20s|%-100s", logPair.obj, logPair.msg)
				logPair.logFn(sb.String())
				sb.Reset()
			}
		}()
	})
}

// Flush blocks until every record queued before the call has been printed.
// Without Init there is no consumer and Flush returns immediately.
func Flush() {
	if !started.Load() {
		return
	}
	done := make(chan struct{})
	logCh <- logPair{flushed: done}
	<-done
}

// Dropped returns the number of records discarded because the queue was full.
func Dropped() uint64 {
	return dropped.Load()
}

func enabled(lvl logrus.Level) bool {
	return logrus.IsLevelEnabled(lvl)
}

// send never blocks the caller.
func send(logFn func(...any), object any, msg string) {
	select {
	case logCh <- logPair{logFn: logFn, obj: objToString(object), msg: msg}:
	default:
		dropped.Add(1)
	}
}

func Tracef(object any, message string, args ...any) {
	if !enabled(logrus.TraceLevel) {
		return
	}
	send(logrus.Trace, object, fmt.Sprintf(message, args...))
}

func Debugf(object any, message string, args ...any) {
	if !enabled(logrus.DebugLevel) {
		return
	}
	send(logrus.Debug, object, fmt.Sprintf(message, args...))
}

func Infof(object any, message string, args ...any) {
	if !enabled(logrus.InfoLevel) {
		return
	}
	send(logrus.Info, object, fmt.Sprintf(message, args...))
}

func Fatalf(object any, message string, args ...any) {
	logrus.Fatalf("|%20s|%-100s", objToString(object), fmt.Sprintf(message, args...))
}

// TraceEnabled reports whether trace records would be emitted, so callers can skip building them.
func TraceEnabled() bool {
	return enabled(logrus.TraceLevel)
}

// DebugEnabled is TraceEnabled for the debug level.
func DebugEnabled() bool {
	return enabled(logrus.DebugLevel)
}
