package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself.
	// It checks two things:
	// 1. Every topic listed in docs/readme.md can be successfully loaded by the khata topic <topic_name> command.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is present in the list of topics extracted from docs/readme.md.

	// Read docs/readme.md line by line and extract topics using regex.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	// Check 1: Every topic listed in docs/readme.md can be successfully loaded.
	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := Topic(topic)
			if err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	// Check 2: Every .md file in the docs directory (excluding readme.md itself) is present in the list of topics extracted from docs/readme.md.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}

	var mdFiles []string
	for _, file := range files {
		base := filepath.Base(file)
		if base != "readme.md" {
			mdFiles = append(mdFiles, strings.TrimSuffix(base, ".md"))
		}
	}

	for _, mdFile := range mdFiles {
		found := false
		for _, topic := range topicsInReadme {
			if topic == mdFile {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", mdFile)
		}
	}
}

func TestAllTopicsExcludesReadme(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Errorf("AllTopics() includes readme")
		}
	}
	if len(topics) == 0 {
		t.Errorf("AllTopics() returned no topics")
	}
}

func TestTopicsStarExpansion(t *testing.T) {
	all, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) failed: %v", err)
	}
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	for _, topic := range topics {
		content, err := Topic(topic)
		if err != nil {
			t.Fatalf("Topic(%q) failed: %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("Topics(*) is missing topic %q", topic)
		}
	}
}

func TestTopicUnknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Errorf("Topic(unknown) did not fail")
	}
}

// TestTopicStructure parses every topic and checks it opens with a level-1
// heading, so the rendered output always starts with a title.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			first := root.FirstChild()
			if first == nil {
				t.Fatalf("%s is empty", file)
			}
			heading, ok := first.(*ast.Heading)
			if !ok || heading.Level != 1 {
				t.Errorf("%s does not start with a level-1 heading", file)
			}
		})
	}
}
