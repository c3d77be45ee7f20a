package conversion

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	binaryLiteral  = regexp.MustCompile(`^0[bB][01]+$`)
	octalLiteral   = regexp.MustCompile(`^0[oO][0-7]+$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

// fixedLimit is the magnitude from which fixed-point rendering gives way to
// the shortest round-trip rendering.
const fixedLimit = 1e21

// ToNumber coerces user text to a number the way a browser coerces the value
// of a numeric input field. Empty or all-whitespace text is 0; text that is
// not a numeric literal is NaN. It never fails.
func ToNumber(text string) float64 {
	s := strings.TrimFunc(text, isInputSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	switch {
	case binaryLiteral.MatchString(s):
		return radixLiteral(s[2:], 2)
	case octalLiteral.MatchString(s):
		return radixLiteral(s[2:], 8)
	case hexLiteral.MatchString(s):
		return radixLiteral(s[2:], 16)
	case !decimalLiteral.MatchString(s):
		return math.NaN()
	}

	// Overflow yields ±Inf alongside a range error, which is the value we want.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return math.NaN()
	}
	return f
}

func isInputSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func radixLiteral(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// FormatNumber renders x using the shortest text that round-trips to x,
// switching to exponent notation outside [1e-6, 1e21).
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	case x < 0:
		return "-" + FormatNumber(-x)
	}

	// d.ddde±XX
	sci := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expText)

	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	e := strconv.Itoa(abs(n - 1))
	if k == 1 {
		return digits + "e" + sign + e
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + e
}

// FormatFixed renders x with exactly places fractional digits. Rounding is
// applied to the exact binary value of x, half away from zero. NaN renders as
// "NaN" and magnitudes of 1e21 and above fall back to FormatNumber.
func FormatFixed(x float64, places int32) string {
	if math.IsNaN(x) || math.Abs(x) >= fixedLimit {
		return FormatNumber(x)
	}
	if x < 0 {
		return "-" + FormatFixed(-x, places)
	}
	return exactDecimal(x).StringFixed(places)
}

// exactDecimal returns the exact value of a finite float64.
// decimal.NewFromFloat picks the shortest representation instead, which rounds
// ties like 1.005 the wrong way.
func exactDecimal(x float64) decimal.Decimal {
	if x == 0 {
		return decimal.Zero
	}
	frac, exp := math.Frexp(x)
	mant := new(big.Int).SetInt64(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// m * 2^e == m * 5^-e * 10^e
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
