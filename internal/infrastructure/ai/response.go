package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

// EmptyReplySentinel is returned by providers when the backend answers with
// no usable content. It is deliberately not an error.
const EmptyReplySentinel = "Unable to generate summary."

// ParseSummaryDocument parses the model reply into a SummaryDocument.
// Models frequently wrap the payload in a fenced code block or prefix it with
// a bare language tag; both are stripped before unmarshalling. On failure the
// caller is expected to fall back to the raw reply text.
func ParseSummaryDocument(raw string) (models.SummaryDocument, error) {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var doc models.SummaryDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return models.SummaryDocument{}, fmt.Errorf("parse summary document: %w", err)
	}
	return doc, nil
}
