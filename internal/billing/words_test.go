package billing

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{215, "Two Hundred Fifteen"},
		{1000, "One Thousand"},
		{1050, "One Thousand Fifty"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{150000, "One Lakh Fifty Thousand"},
		{1000000, "Ten Lakh"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{-19, "Nineteen"}, // magnitude only, no sign word
	}
	for _, c := range cases {
		if got := NumberToWords(c.in); got != c.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
