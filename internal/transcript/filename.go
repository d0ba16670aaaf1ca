package transcript

import (
	"strings"
	"time"
)

const (
	// ExtText and ExtJSON are the two supported export extensions.
	ExtText = ".txt"
	ExtJSON = ".json"

	filenameTimeLayout = "2006-01-02_15-04-05"
	filenamePrefix     = "chat_"
)

// ResolveFilename applies the export filename policy: a blank name is
// synthesized from the current timestamp, and the requested extension is
// appended when absent (case-insensitive check).
func ResolveFilename(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = filenamePrefix + time.Now().Format(filenameTimeLayout)
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}
