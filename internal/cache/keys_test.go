package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("without params", func(t *testing.T) {
		key := GenerateCacheKey("insight", "chapters", "Physics")
		assert.Equal(t, "studyflow:insight:chapters:Physics", key)
	})

	t.Run("with params", func(t *testing.T) {
		key := GenerateCacheKey("insight", "topics", "Physics", "CBSE", "12")
		assert.Equal(t, "studyflow:insight:topics:Physics:CBSE_12", key)
	})
}
