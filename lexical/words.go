// Word tables for English number-to-text conversion.
package lexical

const (
	groupBase = 1000
	hundred   = 100

	// maxGroups is the number of three-digit groups covered by scales.
	maxGroups = len(scales)

	wordZero    = "zero"
	wordHundred = "hundred"
)

// small holds the irregular names for 0–19.
var small = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// scales is indexed by group position counted from the least significant
// group. Position 0 carries no scale word.
var scales = [7]string{
	"",
	"thousand",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
}
