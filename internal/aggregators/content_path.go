package aggregators

import "strings"

// contentPrefixes are the site sections that count as content in engagement mode.
var contentPrefixes = []string{"/blog/", "/apps/", "/about", "/tags"}

// IsContentPath reports whether path is a real content page (home, blog, apps, about, tags)
// rather than an asset, probe or API call. Matching is by prefix, so "/about-team" counts.
func IsContentPath(path string) bool {
	if path == "/" {
		return true
	}
	trimmed := strings.TrimRight(path, "/")
	for _, prefix := range contentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
