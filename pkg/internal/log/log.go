// Package log provides the leveled loggers used across the bridge. Debug
// output is gated on config.Debug so the hot dispatch path stays quiet by
// default.
package log

import (
	"fmt"
	glog "log"
	"os"
	"path"
	"runtime"

	"github.com/glintkit/glint-events/pkg/config"
)

var (
	infoLogger    = newLogger("INFO: ")
	warningLogger = newLogger("WARNING: ")
	errorLogger   = newLogger("ERROR: ")
	debugLogger   = newLogger("DEBUG: ")
)

func newLogger(prefix string) *glog.Logger {
	return glog.New(os.Stderr, prefix, glog.Ldate|glog.Ltime)
}

// caller prefixes messages with the file:line of the logging call site.
func caller(msg string) string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d: %s", path.Base(file), line, msg)
}

func Info(args ...interface{}) { infoLogger.Println(caller(fmt.Sprint(args...))) }
func Infof(f string, args ...interface{}) {
	infoLogger.Println(caller(fmt.Sprintf(f, args...)))
}

func Warning(args ...interface{}) { warningLogger.Println(caller(fmt.Sprint(args...))) }
func Warningf(f string, args ...interface{}) {
	warningLogger.Println(caller(fmt.Sprintf(f, args...)))
}

func Error(args ...interface{}) { errorLogger.Println(caller(fmt.Sprint(args...))) }
func Errorf(f string, args ...interface{}) {
	errorLogger.Println(caller(fmt.Sprintf(f, args...)))
}

func Debug(args ...interface{}) {
	if config.Debug {
		debugLogger.Println(caller(fmt.Sprint(args...)))
	}
}
func Debugf(f string, args ...interface{}) {
	if config.Debug {
		debugLogger.Println(caller(fmt.Sprintf(f, args...)))
	}
}
