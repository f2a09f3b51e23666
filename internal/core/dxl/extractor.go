// Package dxl extracts named text items from DXL export files. The files are
// frequently not well-formed XML, so extraction is pattern-based and tolerant:
// it only relies on the item/text tagging convention, never on the document
// parsing cleanly.
package dxl

import (
	"regexp"
	"strings"
)

var (
	breakTag      = regexp.MustCompile(`<break\s*/>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

func itemPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)<item\s+name=['"]` + regexp.QuoteMeta(prefix) + `_(\d+)['"]>\s*<text>(.*?)</text>\s*</item>`)
}

// ExtractItems returns every "<prefix>_<N>" item in raw, keyed by full item
// name, with its text normalized: <break/> markers become newlines, then any
// whitespace run collapses to a single space and the result is trimmed. A
// duplicated item name keeps the later occurrence. No items is an empty map,
// not an error.
func ExtractItems(raw, prefix string) map[string]string {
	items := make(map[string]string)
	for _, match := range itemPattern(prefix).FindAllStringSubmatch(raw, -1) {
		name := prefix + "_" + match[1]
		text := breakTag.ReplaceAllString(match[2], "\n")
		text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
		items[name] = text
	}
	return items
}
