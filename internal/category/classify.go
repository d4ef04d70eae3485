package category

import (
	"strings"
	"unicode"
)

// rule pairs a category with the keywords that select it. Rules are
// evaluated in order and the first match wins, so a name matching
// several categories resolves by table position, not keyword length.
type rule struct {
	category Category
	keywords []string
}

var rules = []rule{
	{Programming, []string{"C++", "STL", "Python", "JavaScript", "Haskell", "Go", "R", "Bash"}},
	{ToolsSystems, []string{"Vi", "Git", "Linux", "Unix", "Make", "CMake", "Docker", "Jenkins"}},
	{ProtocolsStandards, []string{"TCP", "XMPP", "SIP", "FIX", "ONVIF"}},
	{PlatformsCloud, []string{"Google Cloud", "AWS", "Cloudflare", "Raspberry Pi"}},
	{FrameworksLibraries, []string{"Qt", "JUCE", "ZeroMQ", "Hugo", "Jekyll"}},
}

// Classify returns the first category with a keyword matching name,
// or Other when none match. Matching is case-insensitive. Keywords of
// one or two characters (R, Vi, Go, Qt) only match as standalone word
// tokens; a bare substring test would let "R" claim every name
// containing the letter r and "Go" swallow "Google Cloud" and "Hugo".
// Classification always sees the full name, including any leading
// ordinal prefix.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if matchKeyword(lower, strings.ToLower(keyword)) {
				return r.category
			}
		}
	}
	return Other
}

func matchKeyword(name, keyword string) bool {
	if len(keyword) > 2 {
		return strings.Contains(name, keyword)
	}
	return containsToken(name, keyword)
}

// containsToken reports whether keyword occurs in name as a whole
// token, bounded by the string edges or non-letter-digit runes.
func containsToken(name, keyword string) bool {
	for start := 0; ; {
		idx := strings.Index(name[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)
		if boundaryBefore(name, idx) && boundaryAfter(name, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isWordRune(rune(s[idx-1]))
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	return !isWordRune(rune(s[end]))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
