package util

import "log"

var flagEnableTrace bool = false

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func TraceEnabled() bool {
	return flagEnableTrace
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}

// Warn reports a condition that is worth telling the user about but does not
// stop emulation.
func Warn(format string, v ...interface{}) {
	log.Printf("warning: "+format, v...)
}
