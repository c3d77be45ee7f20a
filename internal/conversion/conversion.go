// Package conversion converts amounts between the old and the new Syrian pound
// and computes what is left to pay when a bill is settled partly in old notes.
//
// Every function is pure. Input text is coerced, never validated: text that is
// not a number flows through as NaN and is rendered as "NaN".
package conversion

import "math"

// Rate is the number of old units that make one new unit.
const Rate = 100

// ZeroRemainder is shown when old-unit payment covers the whole total.
const ZeroRemainder = "0"

// OldToNew converts an old-unit amount to new units with two fractional digits.
// Empty input yields empty output, meaning there is nothing to show.
func OldToNew(oldAmount string) string {
	if oldAmount == "" {
		return ""
	}
	return FormatFixed(ToNumber(oldAmount)/Rate, 2)
}

// NewToOld converts a new-unit amount to old units. The product is rendered
// as-is with no fixed rounding, so fractional input may carry floating-point
// artifacts ("1.1" gives "110.00000000000001"). Empty input yields empty output.
func NewToOld(newAmount string) string {
	if newAmount == "" {
		return ""
	}
	return FormatNumber(ToNumber(newAmount) * Rate)
}

// MixedPaymentRemainder returns the amount still due in new units after paidOld
// old units have been tendered against totalNew.
//
// When totalNew coerces to 0 or NaN nothing is computed and ok is false; the
// caller keeps whatever it showed before. A paidOld that is empty or not a
// number counts as nothing paid. A remainder that is zero or negative is
// reported as ZeroRemainder.
func MixedPaymentRemainder(totalNew, paidOld string) (remaining string, ok bool) {
	total := ToNumber(totalNew)
	if total == 0 || math.IsNaN(total) {
		return "", false
	}

	paid := ToNumber(paidOld)
	if math.IsNaN(paid) {
		paid = 0
	}

	left := total - paid/Rate
	if left > 0 {
		return FormatFixed(left, 2), true
	}
	return ZeroRemainder, true
}
