package utils

import (
	"log"
	"strings"
)

// LogEvent writes one structured line per domain event, tagged with the
// request ID so handler logs can be correlated with the access log. Keep
// messages to identifiers; never log credentials or payload bodies.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
