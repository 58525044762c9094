package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from user-supplied free text before it is persisted.
// Stored text is rendered verbatim by an external UI, so no HTML may survive.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes every HTML element from text. Entity escaping done by the
// policy is undone afterwards so plain text round-trips unchanged.
func (s *Sanitizer) Clean(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}

// CleanPtr is Clean for optional fields.
func (s *Sanitizer) CleanPtr(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := s.Clean(*text)
	return &cleaned
}
