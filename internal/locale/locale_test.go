package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"en", English},
		{"ar", Arabic},
		{"", Arabic},
		{"EN", Arabic},
		{"xx", Arabic},
		{"en-US", Arabic},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		ok       bool
	}{
		{"en", English, true},
		{"en-GB", English, true},
		{"ar", Arabic, true},
		{"ar-SY", Arabic, true},
		{"fr", Arabic, false},
		{"not a tag", Arabic, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			lang, ok := Parse(tc.input)
			assert.Equal(t, tc.expected, lang)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestToggle_IsInvolution(t *testing.T) {
	for _, lang := range []Language{Arabic, English} {
		assert.NotEqual(t, lang, lang.Toggle())
		assert.Equal(t, lang, lang.Toggle().Toggle())
	}
}

func TestLanguageProperties(t *testing.T) {
	assert.Equal(t, RightToLeft, Arabic.Direction())
	assert.Equal(t, LeftToRight, English.Direction())
	assert.Equal(t, language.Arabic, Arabic.Tag())
	assert.Equal(t, language.English, English.Tag())
	assert.Equal(t, "ar", Default.String())
}

func TestTranslation(t *testing.T) {
	ar := Arabic.Translation()
	en := English.Translation()

	assert.Equal(t, "Syrian Pound Converter", en.Title)
	assert.Equal(t, "100 old SYP = 1 new SYP", en.Rule)
	assert.Equal(t, "English", ar.Lang)
	assert.Equal(t, "العربية", en.Lang)

	for _, tr := range []Translation{ar, en} {
		assert.NotEmpty(t, tr.Title)
		assert.NotEmpty(t, tr.Old)
		assert.NotEmpty(t, tr.New)
		assert.NotEmpty(t, tr.Rule)
		assert.NotEmpty(t, tr.Mixed)
		assert.NotEmpty(t, tr.Total)
		assert.NotEmpty(t, tr.PayOld)
		assert.NotEmpty(t, tr.Calc)
		assert.NotEmpty(t, tr.Result)
		assert.NotEmpty(t, tr.Dark)
		assert.NotEmpty(t, tr.Light)
		assert.NotEmpty(t, tr.Lang)
	}
}

func TestThemeLabel(t *testing.T) {
	en := English.Translation()
	assert.Equal(t, "Dark Mode", en.ThemeLabel(false))
	assert.Equal(t, "Light Mode", en.ThemeLabel(true))
}
