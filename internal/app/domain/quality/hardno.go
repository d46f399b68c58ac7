package quality

import (
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

var hardNoPrefixes = []string{"don't want ", "dont want ", "do not want ", "no more ", "avoid ", "not ", "no "}

// NormalizeHardNo strips the negation a traveller wrote in front of the thing
// they do not want: "No long drives" becomes "long drives".
func NormalizeHardNo(s string) string {
	s = textutil.Fold(strings.ReplaceAll(s, "’", "'"))
	for changed := true; changed; {
		changed = false
		for _, p := range hardNoPrefixes {
			if strings.HasPrefix(s, p) {
				s = strings.TrimSpace(strings.TrimPrefix(s, p))
				changed = true
			}
		}
	}
	return s
}

// HardNoMatcher finds hard-no phrases in activity text on word boundaries, so
// "car" never matches inside "cultural". A trailing plural "s" is accepted on
// either side.
type HardNoMatcher struct {
	ac       ahocorasick.AhoCorasick
	patterns []string
	owners   []int // pattern index -> hard-no index
	hardNos  []string
}

func NewHardNoMatcher(hardNos []string) *HardNoMatcher {
	m := &HardNoMatcher{hardNos: hardNos}
	seen := map[string]bool{}
	add := func(p string, owner int) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		m.patterns = append(m.patterns, p)
		m.owners = append(m.owners, owner)
	}
	for i, h := range hardNos {
		p := NormalizeHardNo(h)
		add(p, i)
		if len(p) > 3 && strings.HasSuffix(p, "s") && !strings.HasSuffix(p, "ss") {
			add(strings.TrimSuffix(p, "s"), i)
		}
	}
	if len(m.patterns) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: true,
			MatchOnlyWholeWords:  false,
			MatchKind:            ahocorasick.LeftMostLongestMatch,
			DFA:                  true,
		})
		m.ac = builder.Build(m.patterns)
	}
	return m
}

// Empty reports whether there is nothing to match.
func (m *HardNoMatcher) Empty() bool {
	return len(m.patterns) == 0
}

// Match returns the indexes of the hard-nos found in text, in order of
// first appearance.
func (m *HardNoMatcher) Match(text string) []int {
	if m.Empty() {
		return nil
	}
	haystack := textutil.Fold(text)
	var out []int
	seen := map[int]bool{}
	for _, match := range m.ac.FindAll(haystack) {
		if !wordBounded(haystack, match.Start(), match.End()) {
			continue
		}
		owner := m.owners[match.Pattern()]
		if !seen[owner] {
			seen[owner] = true
			out = append(out, owner)
		}
	}
	return out
}

// HardNo returns the original phrase of a matched index.
func (m *HardNoMatcher) HardNo(i int) string {
	return m.hardNos[i]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordBounded(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end >= len(s) {
		return true
	}
	r, size := utf8.DecodeRuneInString(s[end:])
	if !isWordRune(r) {
		return true
	}
	if r != 's' {
		return false
	}
	if end+size >= len(s) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[end+size:])
	return !isWordRune(next)
}
