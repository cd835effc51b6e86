// Package matching normalizes item names and sizes so that catalog rows,
// order lines and restock requests written by different people line up.
package matching

import (
	"regexp"
	"strings"
)

var (
	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)
	innerParenPattern    = regexp.MustCompile(`\(([^)]*)\)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// minSubstringLength keeps one-letter sizes such as "S" from matching "XS" by substring.
const minSubstringLength = 2

// sizeAliasGroups lists spellings that denote the same size.
var sizeAliasGroups = [][]string{
	{"xs", "extra small", "x-small", "xsmall"},
	{"s", "small", "sm"},
	{"m", "medium", "med"},
	{"l", "large", "lg"},
	{"xl", "extra large", "x-large", "xlarge"},
	{"xxl", "2xl", "xx-large", "2x-large", "double extra large"},
	{"xxxl", "3xl", "xxx-large", "3x-large", "triple extra large"},
}

var sizeAliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]int {
	index := make(map[string]int)
	for group, aliases := range sizeAliasGroups {
		for _, alias := range aliases {
			index[alias] = group
		}
	}

	return index
}

// ItemKey is the normalized form of an item name used for slot counting and matching.
// "Polo Shirt (Male)" and " polo  shirt " share the key "polo shirt".
func ItemKey(name string) string {
	key := parentheticalPattern.ReplaceAllString(name, "")

	return collapse(key)
}

// SameItem reports whether two item names refer to the same catalog item.
// Names that share a key but carry different qualifiers, such as
// "Polo Shirt (Male)" and "Polo Shirt (Female)", are different items.
// An unqualified name matches every qualified variant of its key.
func SameItem(a, b string) bool {
	if SameName(a, b) {
		return true
	}
	if ItemKey(a) == "" || ItemKey(a) != ItemKey(b) {
		return false
	}

	qa, qb := Qualifier(a), Qualifier(b)

	return qa == "" || qb == "" || qa == qb
}

// SameName reports whether two item names are equal ignoring case and spacing.
func SameName(a, b string) bool {
	return collapse(a) != "" && collapse(a) == collapse(b)
}

// Qualifier returns the normalized parenthetical content of an item name:
// "Polo Shirt (Male)" yields "male", "Jersey" yields "".
func Qualifier(name string) string {
	parts := make([]string, 0, 1)
	for _, match := range innerParenPattern.FindAllStringSubmatch(name, -1) {
		if inner := collapse(match[1]); inner != "" {
			parts = append(parts, inner)
		}
	}

	return strings.Join(parts, " ")
}

// NormalizeSize lowercases a size and collapses whitespace.
func NormalizeSize(size string) string {
	return collapse(size)
}

// StripSize removes parenthetical content: "Small (S)" becomes "small".
func StripSize(size string) string {
	return collapse(parentheticalPattern.ReplaceAllString(size, ""))
}

// sizeTokens returns the spellings carried by a size label: the stripped label
// and any parenthetical content, so "Small (S)" yields "small" and "s".
func sizeTokens(size string) []string {
	tokens := make([]string, 0, 2)
	if stripped := StripSize(size); stripped != "" {
		tokens = append(tokens, stripped)
	}
	for _, match := range innerParenPattern.FindAllStringSubmatch(size, -1) {
		if inner := collapse(match[1]); inner != "" {
			tokens = append(tokens, inner)
		}
	}

	return tokens
}

// AliasGroup returns the alias group of a size label, or -1 when it has none.
func AliasGroup(size string) int {
	for _, token := range sizeTokens(size) {
		if group, ok := sizeAliasIndex[token]; ok {
			return group
		}
	}

	return -1
}

// SameSizeAlias reports whether two labels are equal or belong to the same alias group.
// This is the comparison used when matching pre-orders to a restock.
func SameSizeAlias(a, b string) bool {
	if NormalizeSize(a) == NormalizeSize(b) {
		return true
	}
	if StripSize(a) != "" && StripSize(a) == StripSize(b) {
		return true
	}

	groupA := AliasGroup(a)

	return groupA >= 0 && groupA == AliasGroup(b)
}

// Pass identifies which comparison matched a size.
type Pass int

const (
	PassNone Pass = iota
	PassExact
	PassStripped
	PassAlias
	PassSubstring
)

// FindSize returns the index of the label in sizes that best matches want, trying
// exact, parenthetical-stripped, alias-group and finally substring comparisons.
// An empty want matches a single unsized or single-variant list.
func FindSize(sizes []string, want string) (int, Pass) {
	if len(sizes) == 0 {
		return -1, PassNone
	}

	if strings.TrimSpace(want) == "" {
		if len(sizes) == 1 {
			return 0, PassExact
		}
		for idx, size := range sizes {
			if strings.TrimSpace(size) == "" {
				return idx, PassExact
			}
		}

		return -1, PassNone
	}

	normalized := NormalizeSize(want)
	for idx, size := range sizes {
		if NormalizeSize(size) == normalized {
			return idx, PassExact
		}
	}

	stripped := StripSize(want)
	for idx, size := range sizes {
		if stripped != "" && StripSize(size) == stripped {
			return idx, PassStripped
		}
	}

	group := AliasGroup(want)
	if group >= 0 {
		for idx, size := range sizes {
			if AliasGroup(size) == group {
				return idx, PassAlias
			}
		}
	}

	// Letter sizes were already compared by alias group; "XL" must not match "XXL".
	for idx, size := range sizes {
		if group >= 0 && AliasGroup(size) >= 0 {
			continue
		}
		if substringMatch(StripSize(size), stripped) {
			return idx, PassSubstring
		}
	}

	return -1, PassNone
}

// substringMatch reports whether one label contains the other, ignoring labels too short to be meaningful.
func substringMatch(a, b string) bool {
	if len(a) < minSubstringLength || len(b) < minSubstringLength {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}

func collapse(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " ")))
}
