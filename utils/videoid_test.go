package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVideoURL(t *testing.T) {
	assert.True(t, IsVideoURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, IsVideoURL("https://youtu.be/dQw4w9WgXcQ"))
	assert.True(t, IsVideoURL("youtube.com/embed/dQw4w9WgXcQ"))
	assert.False(t, IsVideoURL("https://vimeo.com/123456"))
	assert.False(t, IsVideoURL("not a url"))
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"extraction fails falls back to raw value", "https://www.youtube.com/playlist?list=PL123", "https://www.youtube.com/playlist?list=PL123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}
