// Package app holds the live state of the converter and routes every user
// event to the conversion engine or to the preference store.
package app

import (
	"fjacquet/syp-convert/internal/conversion"
	"fjacquet/syp-convert/internal/locale"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/preferences"
)

// PreferenceStore loads and saves the persisted preferences.
type PreferenceStore interface {
	Load() preferences.Preferences
	Save(p preferences.Preferences)
}

// AmountPair is one value expressed in both denominations. The field the user
// edited last holds their text verbatim; the other is derived from it.
type AmountPair struct {
	Old string
	New string
}

// MixedPayment is the state of the mixed-payment calculator. RemainingNew is
// only recomputed by CalculateRemainder and is empty until the first
// successful calculation.
type MixedPayment struct {
	TotalNew     string
	PaidOld      string
	RemainingNew string
}

// Controller owns the converter state. It is not safe for concurrent use;
// events are expected to arrive one at a time.
type Controller struct {
	store  PreferenceStore
	logger logging.Logger

	amounts AmountPair
	mixed   MixedPayment
	prefs   preferences.Preferences
}

// NewController loads the preferences from store once and starts with empty
// amounts.
func NewController(store PreferenceStore, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	c := &Controller{
		store:  store,
		logger: logger.WithField(logging.FieldComponent, "controller"),
	}
	c.prefs = store.Load()
	return c
}

// EditOld records text typed into the old-unit field and derives the new-unit field.
func (c *Controller) EditOld(text string) {
	c.amounts = AmountPair{Old: text, New: conversion.OldToNew(text)}
}

// EditNew records text typed into the new-unit field and derives the old-unit field.
func (c *Controller) EditNew(text string) {
	c.amounts = AmountPair{Old: conversion.NewToOld(text), New: text}
}

// SetTotalNew records the total due in new units. The remainder is not recomputed.
func (c *Controller) SetTotalNew(text string) {
	c.mixed.TotalNew = text
}

// SetPaidOld records the amount tendered in old units. The remainder is not recomputed.
func (c *Controller) SetPaidOld(text string) {
	c.mixed.PaidOld = text
}

// CalculateRemainder recomputes the remainder from the current mixed-payment
// inputs. When the total is empty, zero or not a number the previous remainder
// is left untouched and false is returned.
func (c *Controller) CalculateRemainder() bool {
	remaining, ok := conversion.MixedPaymentRemainder(c.mixed.TotalNew, c.mixed.PaidOld)
	if !ok {
		c.logger.Debug("Remainder not computed, total is empty or zero",
			logging.Field{Key: logging.FieldOperation, Value: "calculate"})
		return false
	}
	c.mixed.RemainingNew = remaining
	return true
}

// ToggleLanguage switches to the other language and persists the change.
func (c *Controller) ToggleLanguage() {
	c.setPreferences(c.prefs.ToggleLanguage(), "toggle-language")
}

// ToggleDarkMode flips dark mode and persists the change.
func (c *Controller) ToggleDarkMode() {
	c.setPreferences(c.prefs.ToggleDarkMode(), "toggle-dark")
}

// SetLanguage selects lang and persists the change. Selecting the current
// language does nothing.
func (c *Controller) SetLanguage(lang locale.Language) {
	if lang == c.prefs.Language {
		return
	}
	next := c.prefs
	next.Language = lang
	c.setPreferences(next, "set-language")
}

func (c *Controller) setPreferences(p preferences.Preferences, op string) {
	c.prefs = p
	c.logger.Debug("Preferences changed",
		logging.Field{Key: logging.FieldOperation, Value: op},
		logging.Field{Key: logging.FieldLanguage, Value: p.Language.String()},
		logging.Field{Key: logging.FieldDarkMode, Value: p.DarkMode})
	c.store.Save(p)
}

// Amounts returns the current denomination pair.
func (c *Controller) Amounts() AmountPair {
	return c.amounts
}

// Mixed returns the current mixed-payment state.
func (c *Controller) Mixed() MixedPayment {
	return c.mixed
}

// Preferences returns the current preferences.
func (c *Controller) Preferences() preferences.Preferences {
	return c.prefs
}
