package util

import (
	"regexp"
	"strings"
)

var hashtagRegex = regexp.MustCompile(`#([a-zA-Z0-9_]+)`)

// ExtractHashtags 提取正文中的 #标签，统一小写并按首次出现顺序去重
func ExtractHashtags(content string) []string {
	if content == "" {
		return nil
	}

	matches := hashtagRegex.FindAllStringSubmatch(content, -1)

	tagSet := make(map[string]struct{})
	var tags []string

	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, exists := tagSet[tag]; !exists {
			tagSet[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}
