package numeral

const (
	wordZero = "សូន្យ"

	// Literal words used by the money and time templates.
	WordNegative = "ដក"
	WordAnd      = "និង"
	WordCent     = "សេន"
	WordHour     = "ម៉ោង"
	WordMinute   = "នាទី"
)

var units = [10]string{
	wordZero,
	"មួយ",
	"ពីរ",
	"បី",
	"បួន",
	"ប្រាំ",
	"ប្រាំមួយ",
	"ប្រាំពីរ",
	"ប្រាំបី",
	"ប្រាំបួន",
}

// tens is indexed by tens digit (1-9); index 0 is unused.
var tens = [10]string{
	"",
	"ដប់",
	"ម្ភៃ",
	"សាមសិប",
	"សែសិប",
	"ហាសិប",
	"ហុកសិប",
	"ចិតសិប",
	"ប៉ែតសិប",
	"កៅសិប",
}

type scale struct {
	value int64
	label string
}

// scales lists the Khmer magnitude words from largest to smallest.
// Nothing above ពាន់លាន is defined; larger values repeat it through the
// recursive count.
var scales = []scale{
	{value: 1_000_000_000, label: "ពាន់លាន"},
	{value: 1_000_000, label: "លាន"},
	{value: 10_000, label: "ម៉ឺន"},
	{value: 1_000, label: "ពាន់"},
	{value: 100, label: "រយ"},
}

// clockTens covers the tens needed on a clock face, where nothing exceeds 59.
var clockTens = [6]string{
	"",
	"ដប់",
	"ម្ភៃ",
	"សាមសិប",
	"សែសិប",
	"ហាសិប",
}

// khmerDigits maps '0'..'9' to U+17E0..U+17E9.
var khmerDigits = [10]rune{'០', '១', '២', '៣', '៤', '៥', '៦', '៧', '៨', '៩'}
