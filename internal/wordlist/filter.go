// Package wordlist provides custom word validation helpers.
package wordlist

import (
	"unicode"

	"github.com/verte-zerg/slowtype/internal/model"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for custom words.
func FilterForLang(lang model.Language) FilterFunc {
	switch lang {
	case model.LangEnglish:
		return filterEnglishASCII
	case model.LangThai:
		return filterThai
	default:
		return func(word string) bool { return word != "" }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

func filterThai(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.Is(unicode.Thai, r) {
			return false
		}
	}
	return true
}
