package logging

import (
	"fmt"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via BELT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("BELT_DEBUG") != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Default().Debug(fmt.Sprintf(format, args...))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Default().Debug(fmt.Sprint(args...))
	}
}
