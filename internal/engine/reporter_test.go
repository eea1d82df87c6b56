package engine

import "testing"

func TestErrorReporter(t *testing.T) {
	t.Run("empty_reporter_serializes_as_empty_array", func(t *testing.T) {
		r := NewErrorReporter()
		if r.HasErrors() {
			t.Error("fresh reporter should have no errors")
		}
		if errs := r.Errors(); errs == nil || len(errs) != 0 {
			t.Errorf("expected non-nil empty slice, got %#v", errs)
		}
	})

	t.Run("keeps_insertion_order", func(t *testing.T) {
		r := NewErrorReporter()
		r.Add("txn_b", "first failure")
		r.Add("txn_a", "second failure")

		errs := r.Errors()
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %d", len(errs))
		}
		if errs[0].TransactionID != "txn_b" || errs[1].TransactionID != "txn_a" {
			t.Errorf("insertion order lost: %v", errs)
		}
		if !r.HasErrors() {
			t.Error("HasErrors should report true")
		}
	})

	t.Run("repeated_failures_are_not_deduplicated", func(t *testing.T) {
		r := NewErrorReporter()
		r.Add("txn_a", "same reason")
		r.Add("txn_a", "same reason")

		if len(r.Errors()) != 2 {
			t.Errorf("expected both entries kept, got %d", len(r.Errors()))
		}
	})
}
