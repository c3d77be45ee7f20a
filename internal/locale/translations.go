package locale

// Translation is the fixed set of labels shown by the converter.
type Translation struct {
	Title string
	// Old and New name the two denominations.
	Old  string
	New  string
	Rule string
	// Mixed heads the mixed-payment section.
	Mixed  string
	Total  string
	PayOld string
	Calc   string
	Result string
	Dark   string
	Light  string
	// Lang labels the language toggle with the name of the other language.
	Lang string
}

var arabic = Translation{
	Title:  "محول الليرة السورية",
	Old:    "الليرة القديمة",
	New:    "الليرة الجديدة",
	Rule:   "كل 100 ليرة قديمة = 1 ليرة جديدة",
	Mixed:  "الدفع بعملتين معاً",
	Total:  "المبلغ المطلوب (ليرة جديدة)",
	PayOld: "سيدفع بالليرة القديمة",
	Calc:   "احسب المتبقي",
	Result: "يدفع",
	Dark:   "الوضع الليلي",
	Light:  "الوضع النهاري",
	Lang:   "English",
}

var english = Translation{
	Title:  "Syrian Pound Converter",
	Old:    "Old SYP",
	New:    "New SYP",
	Rule:   "100 old SYP = 1 new SYP",
	Mixed:  "Mixed Payment",
	Total:  "Total amount (New SYP)",
	PayOld: "Paying with Old SYP",
	Calc:   "Calculate",
	Result: "Pay",
	Dark:   "Dark Mode",
	Light:  "Light Mode",
	Lang:   "العربية",
}

// ThemeLabel returns the label of the theme toggle, which names the mode the
// toggle switches to.
func (t Translation) ThemeLabel(dark bool) string {
	if dark {
		return t.Light
	}
	return t.Dark
}
