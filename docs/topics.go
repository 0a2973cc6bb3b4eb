// Package docs holds the embedded user manual. Each topic is one markdown
// file; readme.md is the front page and is not itself a topic.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the raw markdown of one topic.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the named topics into one document. A "*" expands to
// every available topic.
func Topics(names ...string) (string, error) {
	expanded := make([]string, 0, len(names))
	for _, name := range names {
		if name != "*" {
			expanded = append(expanded, name)
			continue
		}
		all, err := AllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b bytes.Buffer
	for _, name := range expanded {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists the available topic names, readme excluded. The embedded
// filesystem keeps them in name order.
func AllTopics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	return topics, nil
}
