package billing

import "testing"

func TestNextInvoiceNumber(t *testing.T) {
	t.Run("continues the year sequence", func(t *testing.T) {
		prior := []PriorInvoice{
			{Date: "2024-01-05", Number: "INV-2024-001"},
			{Date: "2024-06-20", Number: "INV-2024-007"},
		}
		got := NextInvoiceNumber("INV-YYYY-###", "2024-09-01", prior)
		if got != "INV-2024-008" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("restarts for a new year", func(t *testing.T) {
		prior := []PriorInvoice{
			{Date: "2024-01-05", Number: "INV-2024-001"},
			{Date: "2024-06-20", Number: "INV-2024-007"},
		}
		got := NextInvoiceNumber("INV-YYYY-###", "2025-01-02", prior)
		if got != "INV-2025-001" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("first invoice ever", func(t *testing.T) {
		got := NextInvoiceNumber("INV-YYYY-###", "2025-03-10", nil)
		if got != "INV-2025-001" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("numbers without digits count as zero", func(t *testing.T) {
		prior := []PriorInvoice{{Date: "2024-02-01", Number: "DRAFT"}}
		got := NextInvoiceNumber("INV-YYYY-###", "2024-02-02", prior)
		if got != "INV-2024-001" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("short tokens", func(t *testing.T) {
		prior := []PriorInvoice{{Date: "2024-02-01", Number: "B24/4"}}
		if got := NextInvoiceNumber("B-YY/#", "2024-05-01", prior); got != "B-24/5" {
			t.Fatalf("YY/# got %q", got)
		}
		if got := NextInvoiceNumber("YY-##", "2024-05-01", prior); got != "24-05" {
			t.Fatalf("YY-## got %q", got)
		}
	})

	t.Run("YYYY is not consumed by the YY rule", func(t *testing.T) {
		if got := NextInvoiceNumber("INV-YYYY-#", "2024-05-01", nil); got != "INV-2024-1" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("invoices without a parseable date are ignored", func(t *testing.T) {
		prior := []PriorInvoice{
			{Date: "", Number: "INV-2024-900"},
			{Date: "2024-03-01", Number: "INV-2024-002"},
		}
		if got := NextInvoiceNumber("INV-YYYY-###", "2024-04-01", prior); got != "INV-2024-003" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("recallable after date change before first save", func(t *testing.T) {
		prior := []PriorInvoice{{Date: "2024-12-30", Number: "INV-2024-011"}}
		first := NextInvoiceNumber("INV-YYYY-###", "2024-12-31", prior)
		second := NextInvoiceNumber("INV-YYYY-###", "2025-01-01", prior)
		if first != "INV-2024-012" || second != "INV-2025-001" {
			t.Fatalf("got %q then %q", first, second)
		}
		// same inputs, same output: unsaved invoices are never counted
		if again := NextInvoiceNumber("INV-YYYY-###", "2024-12-31", prior); again != first {
			t.Fatalf("regeneration not idempotent: %q vs %q", again, first)
		}
	})
}
