package utils

import "regexp"

// Matches standard watch URLs, short youtu.be links and embed/iframe srcs.
var (
	youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)
	videoIDPattern    = regexp.MustCompile(`(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)
)

// IsVideoURL reports whether the value looks like a YouTube link.
func IsVideoURL(url string) bool {
	return youtubeURLPattern.MatchString(url)
}

// ExtractVideoID pulls the 11-character YouTube video id out of a URL.
// When extraction fails the raw input is returned so the value is still
// stored; playback degrades but the curriculum save does not.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	match := videoIDPattern.FindStringSubmatch(url)
	if match != nil && len(match[2]) == 11 {
		return match[2]
	}
	return url
}
