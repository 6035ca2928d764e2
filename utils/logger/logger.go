// Package logger prints "|object|message" lines through logrus. After Init the
// lines are written by a background goroutine; before Init they are written
// synchronously.
package logger

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

type logPair struct {
	logFn func(...any)
	obj   string
	msg   string
}

const (
	logSize  = 1000
	objWidth = 20
)

var (
	logCh    = make(chan logPair, logSize)
	done     = make(chan struct{})
	initOnce sync.Once
	started  atomic.Bool
	// held for reading while sending on logCh, for writing while closing it
	sendMu sync.RWMutex
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
	if len(objStr) > objWidth {
		objStr = objStr[:objWidth]
	}
	return
}

func format(p logPair) string {
	return fmt.Sprintf("|%20s|%-100s", p.obj, p.msg)
}

// Init sets the level and starts the writer goroutine. Only the first call
// starts the goroutine; later calls just change the level.
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
			defer close(done)
			for p := range logCh {
				p.logFn(format(p))
			}
		}()
	})
}

// Close flushes every queued line and stops the writer goroutine. Lines logged
// afterwards are written synchronously. It must be called before the process
// exits, or queued lines are lost.
func Close() {
	sendMu.Lock()
	if !started.CompareAndSwap(true, false) {
		sendMu.Unlock()
		return
	}
	close(logCh)
	sendMu.Unlock()
	<-done
}

// SetOutput redirects logrus, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

func emit(lvl logrus.Level, logFn func(...any), object any, msg string) {
	if logrus.GetLevel() < lvl {
		return
	}
	p := logPair{logFn: logFn, obj: objToString(object), msg: msg}
	sendMu.RLock()
	defer sendMu.RUnlock()
	if !started.Load() {
		p.logFn(format(p))
		return
	}
	logCh <- p
}

func Trace(object any, message string) {
	emit(logrus.TraceLevel, logrus.Trace, object, message)
}

func Debugf(object any, message string, args ...any) {
	emit(logrus.DebugLevel, logrus.Debug, object, fmt.Sprintf(message, args...))
}

func Infof(object any, message string, args ...any) {
	emit(logrus.InfoLevel, logrus.Info, object, fmt.Sprintf(message, args...))
}

func Errorf(object any, message string, args ...any) {
	emit(logrus.ErrorLevel, logrus.Error, object, fmt.Sprintf(message, args...))
}
