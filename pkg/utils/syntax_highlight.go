package utils

import (
	"regexp"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// Report record highlighting colors
var (
	recordKeyColor      = color.New(color.FgCyan)
	recordHexColor      = color.New(color.FgYellow)
	recordTrueColor     = color.New(color.FgGreen)
	recordFalseColor    = color.New(color.FgHiBlack)
	recordMismatchColor = color.New(color.FgRed, color.Bold)
)

var (
	// JSON keys ("rt":) and YAML keys (rt:)
	recordKeyPattern = regexp.MustCompile(`"[a-z0-9_]+"\s*:|(?m)^\s*(?:- )?[a-z0-9_]+:`)
	// Hex values, quoted or not
	recordHexPattern = regexp.MustCompile(`"?0x[0-9A-Fa-f]+"?`)
	// Booleans
	recordBoolPattern = regexp.MustCompile(`\b(?:true|false)\b`)
	// Mismatch marker keys
	recordMismatchPattern = regexp.MustCompile(`"?(?:model_mismatch|any_model_mismatch)"?\s*:`)
)

type token struct {
	text  string
	color *color.Color
	start int
	end   int
}

// HighlightRecord colors a JSON or YAML rendering of report records for terminal output.
// With color output disabled the text is returned unchanged.
func HighlightRecord(text string) string {
	if text == "" {
		return ""
	}

	var tokens []token

	addMatches := func(pattern *regexp.Regexp, pick func(match string) *color.Color) {
		for _, match := range pattern.FindAllStringIndex(text, -1) {
			if overlapsAny(match[0], match[1], tokens) {
				continue
			}

			matched := text[match[0]:match[1]]
			tokens = append(tokens, token{
				text:  matched,
				color: pick(matched),
				start: match[0],
				end:   match[1],
			})
		}
	}

	addMatches(recordMismatchPattern, func(string) *color.Color { return recordMismatchColor })
	addMatches(recordKeyPattern, func(string) *color.Color { return recordKeyColor })
	addMatches(recordHexPattern, func(string) *color.Color { return recordHexColor })
	addMatches(recordBoolPattern, func(match string) *color.Color {
		if match == "true" {
			return recordTrueColor
		}

		return recordFalseColor
	})

	return buildHighlightedString(text, tokens)
}

func overlapsAny(start, end int, tokens []token) bool {
	for _, t := range tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

func buildHighlightedString(text string, tokens []token) string {
	if len(tokens) == 0 {
		return text
	}

	slices.SortFunc(tokens, func(a, b token) int {
		return a.start - b.start
	})

	var result strings.Builder
	pos := 0

	for _, t := range tokens {
		if t.start > pos {
			result.WriteString(text[pos:t.start])
		}
		result.WriteString(t.color.Sprint(t.text))
		pos = t.end
	}

	if pos < len(text) {
		result.WriteString(text[pos:])
	}

	return result.String()
}
