package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFile(t *testing.T) {
	assert.NoError(t, CheckFile("image/png", 10))
	assert.NoError(t, CheckFile("video/mp4", MaxFileSize))
	assert.ErrorIs(t, CheckFile("application/pdf", 10), ErrUnsupportedType)
	assert.ErrorIs(t, CheckFile("image/jpeg", MaxFileSize+1), ErrTooLarge)
}

func TestObjectNameKeepsExtension(t *testing.T) {
	name := ObjectName("testimonials", "Photo.PNG")
	assert.True(t, strings.HasPrefix(name, "testimonials/"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, name, ObjectName("testimonials", "Photo.PNG"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore("http://cdn.test")
	url, err := store.Put(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("data"), 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://cdn.test/testimonials/"))
	assert.Equal(t, 1, store.Len())

	_, err = store.Put(context.Background(), "a.txt", "text/plain", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	require.NoError(t, store.Remove(context.Background(), url))
	assert.Equal(t, 0, store.Len())
}
