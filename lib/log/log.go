/*package log routes pspio's diagnostic messages. Warnings always print;
per-file progress messages only print after SetVerbose(true). Everything
goes to stderr so piped output stays clean.
*/
package log

import (
	"log"
	"os"
)

var (
	verbose = false
	logger  = log.New(os.Stderr, "pspio: ", 0)
)

// SetVerbose turns per-file progress messages on or off.
func SetVerbose(v bool) { verbose = v }

// Verbosef logs a progress message if SetVerbose(true) has been called. It
// has the same signature as the standard fmt.*printf() functions.
func Verbosef(format string, a ...interface{}) {
	if verbose {
		logger.Printf(format, a...)
	}
}

// Warnf logs unconditionally. It has the same signature as the standard
// fmt.*printf() functions.
func Warnf(format string, a ...interface{}) {
	logger.Printf(format, a...)
}
