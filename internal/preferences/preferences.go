// Package preferences persists the display language and the dark-mode switch.
//
// The record is stored as JSON under a single key of a kvstore.Store:
//
//	{"lang":"ar","dark":false}
//
// Reading never fails. A missing or unreadable record yields the defaults and a
// readable record with odd field values is normalised field by field.
package preferences

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"fjacquet/syp-convert/internal/locale"
)

// StorageKey is the key the record is stored under.
const StorageKey = "sy-settings"

// Preferences is the persisted display state.
type Preferences struct {
	Language locale.Language
	DarkMode bool
}

// Default returns the preferences of a first run: Arabic, light mode.
func Default() Preferences {
	return Preferences{Language: locale.Default, DarkMode: false}
}

// ToggleLanguage returns p with the other language selected.
func (p Preferences) ToggleLanguage() Preferences {
	p.Language = p.Language.Toggle()
	return p
}

// ToggleDarkMode returns p with dark mode flipped.
func (p Preferences) ToggleDarkMode() Preferences {
	p.DarkMode = !p.DarkMode
	return p
}

type record struct {
	Lang string `json:"lang"`
	Dark bool   `json:"dark"`
}

// Encode serialises p as the persisted JSON record.
func Encode(p Preferences) []byte {
	data, _ := json.Marshal(record{
		Lang: string(locale.Normalize(string(p.Language))),
		Dark: p.DarkMode,
	})
	return data
}

// Decode parses a persisted record. It is total: anything that is not a JSON
// document yields Default, and within a document "lang" selects English only
// when it is exactly "en" while "dark" is true for any truthy value.
func Decode(data []byte) Preferences {
	p, _ := decode(data)
	return p
}

// decode is Decode that also reports why the defaults were used.
func decode(data []byte) (Preferences, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return Default(), fmt.Errorf("malformed record: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Default(), errors.New("malformed record: trailing data")
	}

	if doc == nil {
		return Default(), errors.New("record is null")
	}

	fields, ok := doc.(map[string]interface{})
	if !ok {
		// Numbers, strings, arrays and booleans have no lang/dark properties.
		return Default(), nil
	}

	lang, _ := fields["lang"].(string)
	return Preferences{
		Language: locale.Normalize(lang),
		DarkMode: truthy(fields["dark"]),
	}, nil
}

// truthy reports whether v counts as true in a boolean context:
// false, 0, "" and null are false, everything else is true.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case json.Number:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil && !isRangeErr(err) {
			return true
		}
		return f != 0
	case string:
		return val != ""
	default:
		return true
	}
}

func isRangeErr(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}
