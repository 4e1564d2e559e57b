package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalThreeStateDecode(t *testing.T) {
	t.Run("absent key decodes as not set", func(t *testing.T) {
		var input UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{}`), &input))

		assert.False(t, input.Title.IsSet())
		_, ok := input.Title.Value()
		assert.False(t, ok)
		assert.Nil(t, input.Title.Ptr())
	})

	t.Run("null decodes as set but invalid", func(t *testing.T) {
		var input UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{"excerpt": null}`), &input))

		assert.True(t, input.Excerpt.IsSet())
		_, ok := input.Excerpt.Value()
		assert.False(t, ok)
		assert.Nil(t, input.Excerpt.Ptr())
	})

	t.Run("value decodes as set and valid", func(t *testing.T) {
		var input UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{"title": "New Title"}`), &input))

		assert.True(t, input.Title.IsSet())
		v, ok := input.Title.Value()
		assert.True(t, ok)
		assert.Equal(t, "New Title", v)
		require.NotNil(t, input.Title.Ptr())
		assert.Equal(t, "New Title", *input.Title.Ptr())
	})

	t.Run("the three states stay distinct in one payload", func(t *testing.T) {
		var input UpdateBlogPostInput
		payload := `{"title": "kept", "excerpt": null}`
		require.NoError(t, json.Unmarshal([]byte(payload), &input))

		assert.True(t, input.Title.IsSet())
		assert.True(t, input.Excerpt.IsSet())
		assert.False(t, input.Content.IsSet())

		_, excerptOK := input.Excerpt.Value()
		assert.False(t, excerptOK)
		title, titleOK := input.Title.Value()
		assert.True(t, titleOK)
		assert.Equal(t, "kept", title)
	})

	t.Run("empty tag list is distinct from an absent one", func(t *testing.T) {
		var withEmpty UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{"tag_ids": []}`), &withEmpty))
		assert.True(t, withEmpty.TagIDs.IsSet())
		ids, ok := withEmpty.TagIDs.Value()
		assert.True(t, ok)
		assert.Empty(t, ids)

		var without UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{}`), &without))
		assert.False(t, without.TagIDs.IsSet())

		var withIDs UpdateBlogPostInput
		require.NoError(t, json.Unmarshal([]byte(`{"tag_ids": [3, 1]}`), &withIDs))
		ids, ok = withIDs.TagIDs.Value()
		assert.True(t, ok)
		assert.Equal(t, []uint{3, 1}, ids)
	})

	t.Run("invalid values surface a decode error", func(t *testing.T) {
		var input UpdateBlogPostInput
		err := json.Unmarshal([]byte(`{"published": "yes"}`), &input)
		assert.Error(t, err)
	})
}

func TestOptionalConstructors(t *testing.T) {
	set := Set("value")
	assert.True(t, set.IsSet())
	v, ok := set.Value()
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	null := Null[string]()
	assert.True(t, null.IsSet())
	_, ok = null.Value()
	assert.False(t, ok)
	assert.Nil(t, null.Ptr())

	var zero Optional[string]
	assert.False(t, zero.IsSet())
}

func TestOptionalMarshal(t *testing.T) {
	data, err := json.Marshal(Set(42))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(data))

	data, err = json.Marshal(Null[int]())
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))

	var absent Optional[int]
	data, err = json.Marshal(absent)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
