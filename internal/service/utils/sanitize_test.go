package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	s := NewSanitizer()

	t.Run("plain text unchanged", func(t *testing.T) {
		assert.Equal(t, "Wooden chair, barely used", s.Clean("Wooden chair, barely used"))
	})

	t.Run("ampersands and quotes round-trip", func(t *testing.T) {
		assert.Equal(t, `Tom & Jerry's "chair"`, s.Clean(`Tom & Jerry's "chair"`))
	})

	t.Run("tags stripped", func(t *testing.T) {
		// script content is skipped entirely, not just the tags
		assert.Equal(t, "", s.Clean(`<script>alert("x")</script>`))
		assert.Equal(t, "bold claim", s.Clean("<b>bold</b> claim"))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", s.Clean(""))
	})
}

func TestCleanPtr(t *testing.T) {
	s := NewSanitizer()

	assert.Nil(t, s.CleanPtr(nil))

	text := "<i>like new</i>"
	cleaned := s.CleanPtr(&text)
	assert.Equal(t, "like new", *cleaned)
}
