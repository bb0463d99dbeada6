// Package langdetect provides language detection for code content.
// It uses go-enry to classify fenced code block interiors when the fence
// info string is empty, so the rendered block header can still name a
// language.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// classifierCandidates keeps the enry classifier on common languages.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the detected language for code content, lowercased.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern checks a few highly indicative prefixes before paying
// for the classifier.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")) &&
		(bytes.Contains(content, []byte("func ")) || bytes.Contains(content, []byte("import "))):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("def ")) || bytes.HasPrefix(trimmed, []byte("import ")):
		return "python"
	case bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) || bytes.HasPrefix(trimmed, []byte("<html")):
		return "html"
	case bytes.HasPrefix(trimmed, []byte("{")) && bytes.HasSuffix(trimmed, []byte("}")) &&
		bytes.Contains(trimmed, []byte("\":")):
		return "json"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(content, []byte("RUN ")):
		return "dockerfile"
	default:
		return ""
	}
}

// normalize lowercases enry's language names into fence-info style tags.
func normalize(lang string) string {
	if lang == "" {
		return langText
	}
	return strings.ToLower(lang)
}
