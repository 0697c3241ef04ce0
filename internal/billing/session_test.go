package billing

import (
	"math"
	"testing"
)

const home = "Tamil Nadu"

func fptr(v float64) *float64 { return &v }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAddAndUpdateItem(t *testing.T) {
	s := NewSession(home)
	idx := s.AddItem()
	if idx != 0 {
		t.Fatalf("expected index 0 got %d", idx)
	}
	if got := s.Totals(); got.Subtotal != 0 || got.GrandTotal != 0 {
		t.Fatalf("empty item must not affect totals: %+v", got)
	}

	s.UpdateItem(idx, ItemPatch{Quantity: fptr(3), Rate: fptr(120)})
	it := s.Items()[0]
	if !approx(it.Amount, 360) {
		t.Fatalf("amount = qty*rate, got %v", it.Amount)
	}
	if it.Tax != 0 || !approx(it.Total, 360) {
		t.Fatalf("gst disabled must leave tax at zero: %+v", it)
	}

	// partial patch: only rate changes, quantity sticks
	s.UpdateItem(idx, ItemPatch{Rate: fptr(100)})
	if got := s.Items()[0]; !approx(got.Amount, 300) || got.Quantity != 3 {
		t.Fatalf("partial update merged wrong: %+v", got)
	}
}

func TestUpdateItemOutOfRange(t *testing.T) {
	s := NewSession(home)
	s.UpdateItem(0, ItemPatch{Quantity: fptr(1)})
	s.RemoveItem(5)
	s.RemoveItem(-1)
	if len(s.Items()) != 0 {
		t.Fatalf("out-of-range ops must be no-ops")
	}
}

func TestRemoveItemReindexes(t *testing.T) {
	s := NewSession(home)
	for i, rate := range []float64{10, 20, 30} {
		s.AddItem()
		s.UpdateItem(i, ItemPatch{Quantity: fptr(1), Rate: fptr(rate)})
	}
	s.RemoveItem(1)
	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items got %d", len(items))
	}
	if !approx(items[0].Amount, 10) || !approx(items[1].Amount, 30) {
		t.Fatalf("remaining items shifted wrong: %+v", items)
	}
	if got := s.Totals(); !approx(got.Subtotal, 40) {
		t.Fatalf("subtotal must exclude removed item, got %v", got.Subtotal)
	}
}

func TestGSTSplit(t *testing.T) {
	t.Run("intra-state splits into equal halves", func(t *testing.T) {
		s := NewSession(home)
		s.SetCustomerState("Tamil Nadu")
		s.SetGSTEnabled(true)
		s.AddItem()
		s.UpdateItem(0, ItemPatch{Quantity: fptr(2), Rate: fptr(500)})
		got := s.Totals()
		if !approx(got.CGST, 25) || !approx(got.SGST, 25) || got.IGST != 0 {
			t.Fatalf("expected 25/25/0 got %+v", got)
		}
		if !approx(got.TotalTax, 50) {
			t.Fatalf("total tax must be 5%% of amount, got %v", got.TotalTax)
		}
		if got.GSTType != "CGST + SGST" {
			t.Fatalf("gst type = %q", got.GSTType)
		}
	})

	t.Run("inter-state is a single component", func(t *testing.T) {
		s := NewSession(home)
		s.SetCustomerState("Maharashtra")
		s.SetGSTEnabled(true)
		s.AddItem()
		s.UpdateItem(0, ItemPatch{Quantity: fptr(2), Rate: fptr(500)})
		got := s.Totals()
		if got.CGST != 0 || got.SGST != 0 || !approx(got.IGST, 50) {
			t.Fatalf("expected 0/0/50 got %+v", got)
		}
		if got.GSTType != "IGST" {
			t.Fatalf("gst type = %q", got.GSTType)
		}
	})

	t.Run("disabling zeroes every tax field", func(t *testing.T) {
		s := NewSession(home)
		s.SetCustomerState("Tamil Nadu")
		s.SetGSTEnabled(true)
		s.AddItem()
		s.UpdateItem(0, ItemPatch{Quantity: fptr(2), Rate: fptr(500)})
		s.SetGSTEnabled(false)
		for _, it := range s.Items() {
			if it.Tax != 0 {
				t.Fatalf("item tax not zeroed: %+v", it)
			}
		}
		got := s.Totals()
		if got.TotalTax != 0 || got.GSTType != "Non-GST" {
			t.Fatalf("totals still taxed: %+v", got)
		}
	})

	t.Run("state change relabels without changing the rate", func(t *testing.T) {
		s := NewSession(home)
		s.SetCustomerState("Tamil Nadu")
		s.SetGSTEnabled(true)
		s.AddItem()
		s.UpdateItem(0, ItemPatch{Quantity: fptr(1), Rate: fptr(1000)})
		before := s.Totals()
		s.SetCustomerState("Kerala")
		after := s.Totals()
		if !approx(before.TotalTax, after.TotalTax) {
			t.Fatalf("total tax changed on relabel: %v vs %v", before.TotalTax, after.TotalTax)
		}
		if after.CGST != 0 || !approx(after.IGST, 50) {
			t.Fatalf("expected IGST after state change: %+v", after)
		}
	})
}

func TestRoundOff(t *testing.T) {
	s := NewSession(home)
	s.SetCustomerState("Kerala")
	s.SetGSTEnabled(true)
	s.AddItem()
	// 99.5 + 5% = 104.475 -> rounds to 104, roundOff -0.475
	s.UpdateItem(0, ItemPatch{Quantity: fptr(1), Rate: fptr(99.5)})

	auto := s.Totals()
	if !approx(auto.RoundOff, 104-104.475) {
		t.Fatalf("auto round off wrong: %v", auto.RoundOff)
	}
	if !approx(auto.GrandTotal, 104) {
		t.Fatalf("grand total must land on whole rupee: %v", auto.GrandTotal)
	}

	s.SetRoundOff(0.25)
	manual := s.Totals()
	if !approx(manual.RoundOff, 0.25) || !approx(manual.GrandTotal, 104.725) {
		t.Fatalf("manual round off not pinned: %+v", manual)
	}

	// adding another item must not overwrite the pinned value
	s.AddItem()
	s.UpdateItem(1, ItemPatch{Quantity: fptr(1), Rate: fptr(10)})
	if got := s.Totals(); !approx(got.RoundOff, 0.25) {
		t.Fatalf("pinned round off lost on recompute: %v", got.RoundOff)
	}
	s.RemoveItem(1)

	s.AutoRoundOff()
	restored := s.Totals()
	if !approx(restored.RoundOff, auto.RoundOff) {
		t.Fatalf("switching back to auto must restore computed value: %v vs %v",
			restored.RoundOff, auto.RoundOff)
	}
}

func TestEndToEnd(t *testing.T) {
	// add item (qty=2, rate=500), enable GST, customer in home state:
	// amount 1000, tax 50 split 25/25, line total 1050, round off 0.
	s := NewSession(home)
	idx := s.AddItem()
	s.UpdateItem(idx, ItemPatch{Quantity: fptr(2), Rate: fptr(500)})
	s.SetGSTEnabled(true)
	s.SetCustomerState(home)

	it := s.Items()[0]
	if !approx(it.Amount, 1000) || !approx(it.Tax, 50) || !approx(it.Total, 1050) {
		t.Fatalf("line computation wrong: %+v", it)
	}
	got := s.Totals()
	if !approx(got.Subtotal, 1000) || !approx(got.CGST, 25) || !approx(got.SGST, 25) {
		t.Fatalf("aggregate computation wrong: %+v", got)
	}
	if !approx(got.RoundOff, 0) || !approx(got.GrandTotal, 1050) {
		t.Fatalf("grand total wrong: %+v", got)
	}
	if got.GrandTotalInWords != "One Thousand Fifty" {
		t.Fatalf("words = %q", got.GrandTotalInWords)
	}
}

func TestLoadItemsRecomputes(t *testing.T) {
	s := NewSession(home)
	s.SetGSTEnabled(true)
	s.SetCustomerState("Kerala")
	// stale derived fields must be overwritten on load
	s.LoadItems([]Item{{Quantity: 2, Rate: 100, Amount: 1, Tax: 1, Total: 1}})
	it := s.Items()[0]
	if !approx(it.Amount, 200) || !approx(it.Tax, 10) || !approx(it.Total, 210) {
		t.Fatalf("loaded items not recomputed: %+v", it)
	}
}
