package game

import (
	"fmt"
	"log"
)

// EnableDebug turns on Debug output. Frontends set it from a flag or the page
// query string.
var EnableDebug = false

// Logger receives debug output. Under GopherJS the standard logger writes to
// the browser console.
var Logger = log.Default()

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		Logger.Print(fmt.Sprintln(args...))
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		Logger.Printf(format, args...)
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		Logger.Print("WARN: " + fmt.Sprintln(args...))
	}
}

// DebugError logs an error regardless of debug mode.
func DebugError(args ...interface{}) {
	Logger.Print("ERROR: " + fmt.Sprintln(args...))
}
