package costbasis

import (
	"testing"

	"github.com/shopspring/decimal"

	"costengine/internal/testutil"
)

func TestAverageCostAcquire(t *testing.T) {
	t.Run("recomputes_weighted_average", func(t *testing.T) {
		s := NewAverageCostStrategy()
		s.Acquire(aapl, "buy_001", date(1), dec("10"), dec("150"), dec("150.55"))
		s.Acquire(aapl, "buy_002", date(10), dec("5"), dec("152"), dec("152.40"))

		testutil.AssertDecimal(t, s.Available(aapl), "15")

		// (10*150.55 + 5*152.40) / 15
		consumed, err := s.Dispose(aapl, dec("15"))
		testutil.AssertNoError(t, err)
		if len(consumed) != 1 {
			t.Fatalf("expected a single consumption, got %d", len(consumed))
		}
		testutil.AssertDecimal(t, consumed[0].UnitNetCost.Round(4), "151.1667")
	})

	t.Run("acquisition_order_does_not_matter", func(t *testing.T) {
		forward := NewAverageCostStrategy()
		forward.Acquire(aapl, "buy_001", date(1), dec("10"), dec("150"), dec("150.55"))
		forward.Acquire(aapl, "buy_002", date(10), dec("5"), dec("152"), dec("152.40"))

		reversed := NewAverageCostStrategy()
		reversed.Acquire(aapl, "buy_002", date(10), dec("5"), dec("152"), dec("152.40"))
		reversed.Acquire(aapl, "buy_001", date(1), dec("10"), dec("150"), dec("150.55"))

		a, err := forward.Dispose(aapl, dec("15"))
		testutil.AssertNoError(t, err)
		b, err := reversed.Dispose(aapl, dec("15"))
		testutil.AssertNoError(t, err)

		if !a[0].UnitNetCost.Round(10).Equal(b[0].UnitNetCost.Round(10)) {
			t.Errorf("average depends on acquisition order: %s vs %s",
				a[0].UnitNetCost, b[0].UnitNetCost)
		}
	})

	t.Run("zero_quantity_leaves_position_unchanged", func(t *testing.T) {
		s := NewAverageCostStrategy()
		s.Acquire(aapl, "buy_001", date(1), dec("10"), dec("100"), dec("100"))
		s.Acquire(aapl, "buy_002", date(2), decimal.Zero, dec("999"), dec("999"))

		consumed, err := s.Dispose(aapl, dec("10"))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, consumed[0].UnitNetCost, "100")
	})
}

func TestAverageCostDispose(t *testing.T) {
	setup := func() *AverageCostStrategy {
		s := NewAverageCostStrategy()
		s.Acquire(aapl, "buy_001", date(1), dec("10"), dec("150"), dec("150.55"))
		s.Acquire(aapl, "buy_002", date(10), dec("5"), dec("152"), dec("152.40"))
		return s
	}

	t.Run("consumes_at_current_average", func(t *testing.T) {
		s := setup()
		consumed, err := s.Dispose(aapl, dec("8"))
		testutil.AssertNoError(t, err)

		if len(consumed) != 1 {
			t.Fatalf("expected a single consumption, got %d", len(consumed))
		}
		if consumed[0].TransactionID != "" {
			t.Errorf("average consumptions carry no source lot, got %q", consumed[0].TransactionID)
		}
		testutil.AssertDecimal(t, consumed[0].Quantity, "8")
		testutil.AssertDecimal(t, s.Available(aapl), "7")
	})

	t.Run("average_unchanged_by_disposal", func(t *testing.T) {
		s := setup()
		first, err := s.Dispose(aapl, dec("5"))
		testutil.AssertNoError(t, err)
		second, err := s.Dispose(aapl, dec("5"))
		testutil.AssertNoError(t, err)

		if !first[0].UnitNetCost.Equal(second[0].UnitNetCost) {
			t.Errorf("average moved across disposals: %s vs %s",
				first[0].UnitNetCost, second[0].UnitNetCost)
		}
		if !first[0].UnitGrossCost.Equal(second[0].UnitGrossCost) {
			t.Errorf("gross average moved across disposals: %s vs %s",
				first[0].UnitGrossCost, second[0].UnitGrossCost)
		}
	})

	t.Run("insufficient_holdings", func(t *testing.T) {
		s := setup()
		_, err := s.Dispose(aapl, dec("15.01"))
		if err == nil {
			t.Fatal("expected insufficient holdings error")
		}
		want := "Sell quantity (15.01) exceeds available holdings (15.00) for instrument 'AAPL' in portfolio 'PORT001'."
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		testutil.AssertDecimal(t, s.Available(aapl), "15")
	})

	t.Run("zero_quantity_disposal", func(t *testing.T) {
		s := setup()
		consumed, err := s.Dispose(aapl, decimal.Zero)
		testutil.AssertNoError(t, err)
		if len(consumed) != 0 {
			t.Errorf("expected no consumptions, got %d", len(consumed))
		}
	})
}
