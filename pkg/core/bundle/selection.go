package bundle

import (
	"path"
	"sort"
	"strings"
)

// markupPriority orders candidate extensions for tie-breaking. Any
// other extension ranks after all of these.
var markupPriority = []string{"html", "htm", "xml"}

// selectionTier is one step of the main-entry search. Tiers run in
// order; the first tier with any candidate wins.
type selectionTier struct {
	name  string
	match func(entryName, receiptNo string) bool
}

// mainEntryTiers locates the filing's main document among the archive
// entries. Every tier is restricted to markup extensions.
var mainEntryTiers = []selectionTier{
	{
		name: "receipt-prefix",
		match: func(entryName, receiptNo string) bool {
			return strings.HasPrefix(strings.ToLower(entryName), strings.ToLower(receiptNo))
		},
	},
	{
		// 사업보고서 = business report, 본문 = body text. DART names
		// the main document with one of these when it doesn't use the
		// receipt number.
		name: "body-marker",
		match: func(entryName, _ string) bool {
			return strings.Contains(entryName, "사업보고서") ||
				strings.Contains(entryName, "본문")
		},
	},
	{
		name: "any-markup",
		match: func(_, _ string) bool {
			return true
		},
	},
}

// ChooseMainEntry picks the archive entry most likely to be the main
// filing document. Within the winning tier, candidates are ranked by
// extension priority (html > htm > xml); the sort is stable, so entries
// with the same extension keep their archive order. Returns false when
// no entry has a markup extension.
func ChooseMainEntry(names []string, receiptNo string) (string, bool) {
	for _, tier := range mainEntryTiers {
		var candidates []string
		for _, name := range names {
			if hasMarkupExt(name) && tier.match(name, receiptNo) {
				candidates = append(candidates, name)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return extRank(candidates[i]) < extRank(candidates[j])
		})
		return candidates[0], true
	}
	return "", false
}

func entryExt(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}

func hasMarkupExt(name string) bool {
	ext := entryExt(name)
	for _, m := range markupPriority {
		if ext == m {
			return true
		}
	}
	return false
}

func extRank(name string) int {
	ext := entryExt(name)
	for i, m := range markupPriority {
		if ext == m {
			return i
		}
	}
	return len(markupPriority)
}
