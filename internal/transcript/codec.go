package transcript

import (
	"bytes"
	"encoding/json"
	"strings"

	"ai-chatbot-backend/internal/model"
)

// chunkSeparator splits transcript blocks. Content containing a blank line of
// its own can defeat the split on decode; accepted limitation of the format.
const chunkSeparator = "\n\n"

// EncodeText renders a conversation as "<ROLE>: <content>" blocks joined by a
// blank line. Carriage returns are stripped so the output is stable across
// platforms.
func EncodeText(msgs []model.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		content := strings.ReplaceAll(m.Content, "\r", "")
		lines = append(lines, strings.ToUpper(string(m.Role))+": "+content)
	}
	return strings.Join(lines, chunkSeparator)
}

// DecodeText parses a text transcript back into a conversation. Malformed
// chunks (no colon, unknown role, empty content) are dropped, never errored.
// If the result is empty or does not start with a system message, the default
// system message is prepended.
func DecodeText(raw string) []model.Message {
	var msgs []model.Message

	for _, chunk := range strings.Split(raw, chunkSeparator) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		rolePart, contentPart, found := strings.Cut(chunk, ":")
		if !found {
			continue
		}
		role := model.Role(strings.ToLower(strings.TrimSpace(rolePart)))
		content := strings.TrimSpace(contentPart)
		if !model.ValidRole(role) || content == "" {
			continue
		}
		msgs = append(msgs, model.Message{Role: role, Content: content})
	}

	if len(msgs) == 0 || msgs[0].Role != model.RoleSystem {
		msgs = append([]model.Message{model.SystemMessage("")}, msgs...)
	}

	return msgs
}

// EncodeJSON serializes a conversation as a UTF-8 JSON array with 2-space
// indentation. Non-ASCII characters are kept literal, not escaped.
func EncodeJSON(msgs []model.Message) ([]byte, error) {
	if msgs == nil {
		msgs = []model.Message{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msgs); err != nil {
		return nil, err
	}

	// Encoder appends a trailing newline; the exported document ends at the
	// closing bracket.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
