package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	Required("phone", "9876543210", v)
	if v["name"] != "required" {
		t.Fatalf("expected required violation, got %v", v)
	}
	if _, ok := v["phone"]; ok {
		t.Fatalf("unexpected violation for phone: %v", v)
	}
}

func TestGSTIN(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true}, // optional everywhere
		{"33ABCDE1234F1Z5", true},
		{"09ABCDE1234F2Z9", true},
		{"33abcde1234f1z5", false},
		{"33ABCDE1234F1X5", false}, // 14th char must be Z
		{"33ABCDE1234F1Z", false},  // too short
	}
	for _, c := range cases {
		v := Violations{}
		GSTIN("gstNumber", c.value, v)
		if c.ok != v.Empty() {
			t.Errorf("GSTIN(%q): violations=%v want ok=%v", c.value, v, c.ok)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"9876543210", true},
		{"98765-43210", true}, // separators are ignored
		{"+91 98765 43210", false},
		{"1234567890", false}, // must start 6-9
		{"98765", false},
	}
	for _, c := range cases {
		v := Violations{}
		Phone("phone", c.value, v)
		if c.ok != v.Empty() {
			t.Errorf("Phone(%q): violations=%v want ok=%v", c.value, v, c.ok)
		}
	}
}

func TestStateFromGSTIN(t *testing.T) {
	if got := StateFromGSTIN("33ABCDE1234F1Z5"); got != "Tamil Nadu" {
		t.Fatalf("expected Tamil Nadu got %q", got)
	}
	if got := StateFromGSTIN("27ABCDE1234F1Z5"); got != "Maharashtra" {
		t.Fatalf("expected Maharashtra got %q", got)
	}
	if got := StateFromGSTIN("99ABCDE1234F1Z5"); got != "" {
		t.Fatalf("expected empty for unknown code, got %q", got)
	}
	if got := StateFromGSTIN("3"); got != "" {
		t.Fatalf("expected empty for short value, got %q", got)
	}
}
