// Package locale holds the display strings of the converter in its two
// supported languages.
package locale

import (
	"golang.org/x/text/language"
)

// Language is one of the two supported display languages.
type Language string

const (
	// Arabic is the primary language and the default.
	Arabic Language = "ar"
	// English is the secondary language.
	English Language = "en"
)

// Default is used whenever no valid language is known.
const Default = Arabic

// Direction is the writing direction of a language.
type Direction string

const (
	RightToLeft Direction = "rtl"
	LeftToRight Direction = "ltr"
)

var (
	languages = []Language{Arabic, English}
	matcher   = language.NewMatcher([]language.Tag{Arabic.Tag(), English.Tag()})
)

// Normalize maps any key to a supported language. Only the exact English key
// selects English; everything else, including the empty string, is Arabic.
func Normalize(key string) Language {
	if Language(key) == English {
		return English
	}
	return Arabic
}

// Parse matches a BCP 47 tag such as "en-GB" or "ar-SY" against the supported
// languages. ok is false when the tag matches neither, in which case the
// default language is returned.
func Parse(tag string) (lang Language, ok bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return Default, false
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return Default, false
	}
	return languages[index], true
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	switch l {
	case English:
		return Arabic
	default:
		return English
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	default:
		return language.Arabic
	}
}

// Direction returns the writing direction used to lay out text in l.
func (l Language) Direction() Direction {
	switch l {
	case English:
		return LeftToRight
	default:
		return RightToLeft
	}
}

// Translation returns the display strings for l.
func (l Language) Translation() Translation {
	switch l {
	case English:
		return english
	default:
		return arabic
	}
}

func (l Language) String() string {
	return string(l)
}
