// Package langdetect guesses the language of an untagged code block so a
// warning can suggest which fence tag to add. It uses go-enry for shebang
// and classifier detection, with a few cheap signatures checked first.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined with confidence.
const Unknown = "text"

// classifierCandidates limits the enry classifier to languages commonly
// found in project documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile", "TOML",
}

// signature is a cheap, highly indicative content check.
type signature struct {
	lang  string
	match func(content, trimmed []byte) bool
}

//nolint:gochecknoglobals // Read-only lookup table, checked in order.
var signatures = []signature{
	{"go", isGo},
	{"bash", isShellSession},
	{"python", isPython},
	{"html", isHTML},
	{"json", isJSON},
	{"dockerfile", isDockerfile},
	{"sql", isSQL},
	{"rust", isRust},
	{"javascript", isJavaScript},
	{"yaml", isYAML},
}

// Detect returns a fence tag for content, or Unknown.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, sig := range signatures {
		if sig.match(content, trimmed) {
			return sig.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

func isGo(_, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("package ")) ||
		bytes.Contains(trimmed, []byte("func main() {"))
}

// promptPattern matches "$ cmd" lines in a pasted terminal session.
var promptPattern = regexp.MustCompile(`(?m)^\$ \S`)

func isShellSession(content, _ []byte) bool {
	return promptPattern.Match(content)
}

func isPython(content, _ []byte) bool {
	text := string(content)
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	if strings.Contains(text, "__name__") || strings.Contains(text, "__main__") {
		return true
	}
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "import ") && !strings.Contains(text, "import (") &&
		!strings.Contains(text, " from \"") && !strings.Contains(text, " from '")
}

func isHTML(_, trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	for _, tag := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if bytes.Contains(lower, []byte(tag)) {
			return true
		}
	}
	return false
}

func isJSON(_, trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func isDockerfile(content, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
}

func isSQL(_, trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return false
}

func isRust(content, _ []byte) bool {
	text := string(content)
	return strings.Contains(text, "fn main()") ||
		strings.Contains(text, "println!") ||
		strings.Contains(text, "let mut ")
}

func isJavaScript(content, _ []byte) bool {
	text := string(content)
	return strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "let ") ||
		strings.Contains(text, "console.log")
}

// isYAML requires at least two key: value pairs or root list items.
func isYAML(content, _ []byte) bool {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
