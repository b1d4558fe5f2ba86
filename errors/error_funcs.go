package errors

import (
	"os"

	log "github.com/cloudposse/ekscli/pkg/logger"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// PrintError formats err and writes it to stderr.
func PrintError(err error, config FormatterConfig) {
	if err == nil {
		return
	}
	if _, writeErr := os.Stderr.WriteString(Format(err, config) + newline); writeErr != nil {
		log.Error(writeErr)
		log.Error(err)
	}
}
