package app

import (
	"testing"

	"fjacquet/syp-convert/internal/kvstore"
	"fjacquet/syp-convert/internal/locale"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts calls and remembers every saved record.
type recordingStore struct {
	initial preferences.Preferences
	loads   int
	saved   []preferences.Preferences
}

func (r *recordingStore) Load() preferences.Preferences {
	r.loads++
	return r.initial
}

func (r *recordingStore) Save(p preferences.Preferences) {
	r.saved = append(r.saved, p)
}

func newController(t *testing.T, initial preferences.Preferences) (*Controller, *recordingStore) {
	t.Helper()
	store := &recordingStore{initial: initial}
	return NewController(store, logging.NewMockLogger()), store
}

func TestNewController_LoadsOnce(t *testing.T) {
	c, store := newController(t, preferences.Preferences{Language: locale.English, DarkMode: true})

	assert.Equal(t, 1, store.loads)
	assert.Empty(t, store.saved)
	assert.Equal(t, preferences.Preferences{Language: locale.English, DarkMode: true}, c.Preferences())

	c.EditOld("100")
	c.View()
	assert.Equal(t, 1, store.loads)
}

func TestController_EditOld(t *testing.T) {
	c, _ := newController(t, preferences.Default())

	c.EditOld("100")
	assert.Equal(t, AmountPair{Old: "100", New: "1.00"}, c.Amounts())

	c.EditOld("abc")
	assert.Equal(t, AmountPair{Old: "abc", New: "NaN"}, c.Amounts())

	c.EditOld("")
	assert.Equal(t, AmountPair{}, c.Amounts())
}

func TestController_EditNew(t *testing.T) {
	c, _ := newController(t, preferences.Default())

	c.EditNew("1")
	assert.Equal(t, AmountPair{Old: "100", New: "1"}, c.Amounts())

	c.EditNew("1.1")
	assert.Equal(t, AmountPair{Old: "110.00000000000001", New: "1.1"}, c.Amounts())

	c.EditOld("250")
	c.EditNew("")
	assert.Equal(t, AmountPair{}, c.Amounts(), "clearing either side clears both")
}

func TestController_RemainderOnlyOnTrigger(t *testing.T) {
	c, _ := newController(t, preferences.Default())

	c.SetTotalNew("10")
	c.SetPaidOld("500")
	assert.Empty(t, c.Mixed().RemainingNew, "inputs alone do not compute")

	require.True(t, c.CalculateRemainder())
	assert.Equal(t, MixedPayment{TotalNew: "10", PaidOld: "500", RemainingNew: "5.00"}, c.Mixed())

	c.SetPaidOld("1000")
	assert.Equal(t, "5.00", c.Mixed().RemainingNew)
	require.True(t, c.CalculateRemainder())
	assert.Equal(t, "0", c.Mixed().RemainingNew)
}

func TestController_EmptyTotalKeepsPreviousRemainder(t *testing.T) {
	c, _ := newController(t, preferences.Default())

	c.SetTotalNew("10")
	c.SetPaidOld("500")
	require.True(t, c.CalculateRemainder())

	c.SetTotalNew("")
	assert.False(t, c.CalculateRemainder())
	assert.Equal(t, "5.00", c.Mixed().RemainingNew)

	c.SetTotalNew("0")
	assert.False(t, c.CalculateRemainder())
	assert.Equal(t, "5.00", c.Mixed().RemainingNew)
}

func TestController_ToggleLanguage(t *testing.T) {
	c, store := newController(t, preferences.Default())

	c.ToggleLanguage()
	assert.Equal(t, locale.English, c.Preferences().Language)
	c.ToggleLanguage()
	assert.Equal(t, locale.Arabic, c.Preferences().Language)

	require.Len(t, store.saved, 2)
	assert.Equal(t, preferences.Preferences{Language: locale.English}, store.saved[0])
	assert.Equal(t, preferences.Preferences{Language: locale.Arabic}, store.saved[1])
}

func TestController_ToggleDarkMode(t *testing.T) {
	c, store := newController(t, preferences.Preferences{Language: locale.English})

	c.ToggleDarkMode()
	assert.True(t, c.Preferences().DarkMode)
	c.ToggleDarkMode()
	assert.False(t, c.Preferences().DarkMode)

	require.Len(t, store.saved, 2)
	assert.Equal(t, preferences.Preferences{Language: locale.English, DarkMode: true}, store.saved[0],
		"the complete record is saved")
}

func TestController_SetLanguage(t *testing.T) {
	c, store := newController(t, preferences.Default())

	c.SetLanguage(locale.Arabic)
	assert.Empty(t, store.saved)

	c.SetLanguage(locale.English)
	assert.Equal(t, locale.English, c.Preferences().Language)
	assert.Len(t, store.saved, 1)
}

func TestController_View(t *testing.T) {
	c, _ := newController(t, preferences.Default())

	v := c.View()
	assert.Equal(t, locale.RightToLeft, v.Direction)
	assert.Equal(t, locale.Arabic.Translation(), v.Text)
	assert.False(t, v.ShowResult())
	assert.Equal(t, "الوضع الليلي", v.ThemeToggleLabel())

	c.ToggleLanguage()
	c.ToggleDarkMode()
	c.SetTotalNew("3")
	c.CalculateRemainder()

	v = c.View()
	assert.Equal(t, locale.LeftToRight, v.Direction)
	assert.Equal(t, "Light Mode", v.ThemeToggleLabel())
	assert.True(t, v.ShowResult())
	assert.Equal(t, "3.00", v.Mixed.RemainingNew)
}

func TestController_PersistsAcrossSessions(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	first := NewController(preferences.NewStore(kv, "", logging.NewMockLogger()), logging.NewMockLogger())
	assert.Equal(t, preferences.Default(), first.Preferences())
	first.ToggleLanguage()
	first.ToggleDarkMode()

	second := NewController(preferences.NewStore(kv, "", logging.NewMockLogger()), logging.NewMockLogger())
	assert.Equal(t, preferences.Preferences{Language: locale.English, DarkMode: true}, second.Preferences())
	assert.Equal(t, AmountPair{}, second.Amounts(), "amounts are not persisted")
}
