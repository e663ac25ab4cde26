package util

import "log"

var flagEnableTrace bool = false

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}

// Warn reports a non-fatal frontend problem, e.g. a failed texture
// upload on the present path.
func Warn(format string, v ...interface{}) {
	log.Printf("warning: "+format, v...)
}
