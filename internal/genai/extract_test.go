package genai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	type plan struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	}

	t.Run("object surrounded by prose", func(t *testing.T) {
		text := `Sure! Here is your study plan: {"nodes":[{"id":"n1"},{"id":"n2"}]} Hope this helps.`
		var out plan
		err := ExtractJSON(text, &out)
		require.NoError(t, err)
		require.Len(t, out.Nodes, 2)
		assert.Equal(t, "n1", out.Nodes[0].ID)
	})

	t.Run("fenced json block preferred", func(t *testing.T) {
		text := "Here you go:\n```json\n{\"nodes\":[{\"id\":\"fenced\"}]}\n```\nand some trailing {notjson}"
		var out plan
		err := ExtractJSON(text, &out)
		require.NoError(t, err)
		require.Len(t, out.Nodes, 1)
		assert.Equal(t, "fenced", out.Nodes[0].ID)
	})

	t.Run("untagged fenced block", func(t *testing.T) {
		text := "```\n[1, 2, 3]\n```"
		var out []int
		err := ExtractJSON(text, &out)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, out)
	})

	t.Run("commentary braces after the value are ignored", func(t *testing.T) {
		text := `{"nodes":[{"id":"a"}]} Note: ids like {x} are placeholders}`
		var out plan
		err := ExtractJSON(text, &out)
		require.NoError(t, err)
		assert.Equal(t, "a", out.Nodes[0].ID)
	})

	t.Run("braces inside strings do not break scanning", func(t *testing.T) {
		text := `prose {"label": "use the {curly} form", "n": 1} prose`
		var out map[string]interface{}
		err := ExtractJSON(text, &out)
		require.NoError(t, err)
		assert.Equal(t, "use the {curly} form", out["label"])
	})

	t.Run("no brackets at all", func(t *testing.T) {
		var out plan
		err := ExtractJSON("I'm sorry, I cannot produce a plan for that subject.", &out)
		var extractionErr *ExtractionError
		require.True(t, errors.As(err, &extractionErr))
		assert.Contains(t, extractionErr.Raw, "cannot produce a plan")
	})

	t.Run("malformed json is an extraction error, not a panic", func(t *testing.T) {
		var out plan
		err := ExtractJSON(`{"nodes": [}`, &out)
		var extractionErr *ExtractionError
		require.True(t, errors.As(err, &extractionErr))
		assert.Equal(t, `{"nodes": [}`, extractionErr.Raw)
	})

	t.Run("array value", func(t *testing.T) {
		var out []map[string]interface{}
		err := ExtractJSON(`The chapters are: [{"id": 1}, {"id": 2}]`, &out)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})
}

func TestBalancedSpan(t *testing.T) {
	t.Run("unclosed opener yields no span", func(t *testing.T) {
		_, ok := balancedSpan(`{"nodes": [`)
		assert.False(t, ok)
	})

	t.Run("nested structures", func(t *testing.T) {
		span, ok := balancedSpan(`x {"a": {"b": [1, {"c": 2}]}} y`)
		assert.True(t, ok)
		assert.Equal(t, `{"a": {"b": [1, {"c": 2}]}}`, span)
	})
}
