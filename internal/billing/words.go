package billing

var onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
	"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty",
	"Sixty", "Seventy", "Eighty", "Ninety"}

// NumberToWords spells out n using Indian numbering (hundred, thousand,
// lakh, crore). Negative input uses the magnitude with no sign word.
func NumberToWords(n int64) string {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Zero"
	}
	return toWords(n)
}

func toWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	case n < 1000:
		s := onesWords[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + toWords(n%100)
		}
		return s
	case n < 100000:
		s := toWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + toWords(n%1000)
		}
		return s
	case n < 10000000:
		s := toWords(n/100000) + " Lakh"
		if n%100000 != 0 {
			s += " " + toWords(n%100000)
		}
		return s
	default:
		s := toWords(n/10000000) + " Crore"
		if n%10000000 != 0 {
			s += " " + toWords(n%10000000)
		}
		return s
	}
}
