// Package monitoring holds the diagnostic logger shared by the analysis
// packages.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf;
// tests and the CLI's quiet mode replace it with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
