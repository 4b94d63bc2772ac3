package utils

import "strings"

// AddToLogMessage appends one entry to a per-request log builder. Entries
// are separated by ";\n" and flushed together by FlushLog.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}
