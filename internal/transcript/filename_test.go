package transcript_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-chatbot-backend/internal/transcript"
)

func TestResolveFilename(t *testing.T) {
	t.Run("Blank Name Synthesized From Timestamp", func(t *testing.T) {
		got := transcript.ResolveFilename("", transcript.ExtText)
		assert.Regexp(t, regexp.MustCompile(`^chat_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.txt$`), got)
	})

	t.Run("Whitespace Name Synthesized", func(t *testing.T) {
		got := transcript.ResolveFilename("   ", transcript.ExtJSON)
		assert.Regexp(t, regexp.MustCompile(`^chat_.*\.json$`), got)
	})

	t.Run("Extension Appended When Missing", func(t *testing.T) {
		assert.Equal(t, "notes.txt", transcript.ResolveFilename("notes", transcript.ExtText))
		assert.Equal(t, "notes.json", transcript.ResolveFilename("notes", transcript.ExtJSON))
	})

	t.Run("Existing Extension Kept Case Insensitive", func(t *testing.T) {
		assert.Equal(t, "notes.TXT", transcript.ResolveFilename("notes.TXT", transcript.ExtText))
		assert.Equal(t, "notes.txt", transcript.ResolveFilename("notes.txt", transcript.ExtText))
	})

	t.Run("Wrong Extension Gets Suffix", func(t *testing.T) {
		assert.Equal(t, "notes.txt.json", transcript.ResolveFilename("notes.txt", transcript.ExtJSON))
	})
}
