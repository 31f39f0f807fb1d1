package moderation

import "strings"

var defaultBlocked = []string{
	"fuck", "shit", "bitch", "cunt", "asshole", "bastard", "dickhead",
	"motherf", "whore", "slut", "bollock", "twat", "prick",
	"pussy", "penis", "vagina", "porn", "nazi", "hitler",
}

// leet spellings folded before matching.
var leet = strings.NewReplacer(
	"0", "o",
	"1", "i",
	"3", "e",
	"4", "a",
	"5", "s",
	"7", "t",
	"8", "b",
	"@", "a",
	"$", "s",
	"_", "",
	"-", "",
)

// WordFilter flags names containing a blocked word, ignoring case, separators and leet spelling.
type WordFilter struct {
	blocked []string
}

func NewWordFilter(extra ...string) *WordFilter {
	blocked := make([]string, 0, len(defaultBlocked)+len(extra))
	blocked = append(blocked, defaultBlocked...)

	for _, word := range extra {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			blocked = append(blocked, word)
		}
	}

	return &WordFilter{blocked: blocked}
}

func (that *WordFilter) IsProfane(text string) bool {
	lowered := strings.ToLower(text)
	folded := leet.Replace(lowered)

	for _, word := range that.blocked {
		if strings.Contains(lowered, word) || strings.Contains(folded, word) {
			return true
		}
	}

	return false
}
