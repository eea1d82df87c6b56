package engine

import (
	"errors"
	"testing"

	"costengine/internal/costbasis"
	"costengine/internal/models"
	"costengine/internal/testutil"
)

func fifoEngine() *Engine {
	return New(costbasis.NewStrategy(costbasis.MethodFIFO))
}

func TestApplyNewBuy(t *testing.T) {
	t.Run("net_falls_back_to_gross_plus_fees_and_interest", func(t *testing.T) {
		e := fifoEngine()
		txn := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1500.00")
		txn.Fees = models.Fees{Brokerage: testutil.Dec(t, "4.00"), GST: testutil.Dec(t, "0.50")}
		txn.AccruedInterest = testutil.Dec(t, "1.00")

		out, err := e.ApplyNew(txn)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalPtr(t, out.GrossCost, "1500.00")
		testutil.AssertDecimalPtr(t, out.NetCost, "1505.50")
		testutil.AssertDecimalPtr(t, out.AveragePrice, "150.55")
		if out.RealizedGainLoss != nil {
			t.Errorf("acquisitions never realize gain/loss, got %s", out.RealizedGainLoss)
		}
	})

	t.Run("net_amount_takes_precedence_over_fallback", func(t *testing.T) {
		e := fifoEngine()
		txn := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "5", "760.00")
		txn.NetTransactionAmount = testutil.DecPtr(t, "762.00")
		txn.Fees = models.Fees{Brokerage: testutil.Dec(t, "99.00")}

		out, err := e.ApplyNew(txn)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalPtr(t, out.NetCost, "762.00")
		testutil.AssertDecimalPtr(t, out.AveragePrice, "152.40")
	})

	t.Run("supplied_average_price_is_kept", func(t *testing.T) {
		e := fifoEngine()
		txn := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1500.00")
		txn.AveragePrice = testutil.DecPtr(t, "149.9900")

		out, err := e.ApplyNew(txn)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalPtr(t, out.AveragePrice, "149.9900")
	})

	t.Run("zero_quantity_buy", func(t *testing.T) {
		e := fifoEngine()
		txn := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "0", "0")

		out, err := e.ApplyNew(txn)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalPtr(t, out.AveragePrice, "0")

		// The zero-quantity buy opened no lot.
		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "1", "100")
		_, err = e.ApplyNew(sell)
		if err == nil {
			t.Fatal("expected insufficient holdings error")
		}
	})
}

func TestApplyNewSell(t *testing.T) {
	t.Run("matches_lots_and_realizes_gain", func(t *testing.T) {
		e := fifoEngine()

		existing := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1500.00")
		existing.GrossCost = testutil.DecPtr(t, "1500.00")
		existing.NetCost = testutil.DecPtr(t, "1505.50")
		e.ApplyExisting(existing)

		newBuy := testutil.BuyTransaction("buy_002", "PORT001", "AAPL", testutil.Day(10), "5", "760.00")
		newBuy.NetTransactionAmount = testutil.DecPtr(t, "762.00")
		_, err := e.ApplyNew(newBuy)
		testutil.AssertNoError(t, err)

		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(15), "8", "1250.00")
		sell.NetTransactionAmount = testutil.DecPtr(t, "1247.00")

		out, err := e.ApplyNew(sell)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalPtr(t, out.GrossCost, "1200.00")
		testutil.AssertDecimalPtr(t, out.NetCost, "1204.40")
		testutil.AssertDecimalPtr(t, out.RealizedGainLoss, "42.60")
		testutil.AssertDecimalPtr(t, out.AveragePrice, "150.55")
	})

	t.Run("proceeds_fall_back_to_gross_minus_fees", func(t *testing.T) {
		e := fifoEngine()
		buy := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1000.00")
		_, err := e.ApplyNew(buy)
		testutil.AssertNoError(t, err)

		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "10", "1100.00")
		sell.Fees = models.Fees{Brokerage: testutil.Dec(t, "5.00"), StampDuty: testutil.Dec(t, "1.00")}

		out, err := e.ApplyNew(sell)
		testutil.AssertNoError(t, err)

		// proceeds 1094.00 against net cost 1000.00
		testutil.AssertDecimalPtr(t, out.RealizedGainLoss, "94.00")
	})

	t.Run("insufficient_holdings_leaves_ledger_untouched", func(t *testing.T) {
		fifo := costbasis.NewFIFOStrategy()
		e := New(fifo)
		buy := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "5", "500.00")
		_, err := e.ApplyNew(buy)
		testutil.AssertNoError(t, err)

		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "6", "700.00")
		_, err = e.ApplyNew(sell)

		var insufficient *costbasis.InsufficientHoldingsError
		if !errors.As(err, &insufficient) {
			t.Fatalf("expected InsufficientHoldingsError, got %v", err)
		}
		testutil.AssertDecimal(t, fifo.Available(sell.Key()), "5")
	})

	t.Run("zero_quantity_sell", func(t *testing.T) {
		e := fifoEngine()
		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(1), "0", "0")

		out, err := e.ApplyNew(sell)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalPtr(t, out.GrossCost, "0")
		testutil.AssertDecimalPtr(t, out.NetCost, "0")
		testutil.AssertDecimalPtr(t, out.RealizedGainLoss, "0")
		testutil.AssertDecimalPtr(t, out.AveragePrice, "0")
	})
}

func TestApplyNewPassthrough(t *testing.T) {
	e := fifoEngine()

	txn := testutil.BuyTransaction("div_001", "PORT001", "AAPL", testutil.Day(1), "0", "25.00")
	txn.TransactionType = models.TransactionTypeDividend
	txn.NetTransactionAmount = testutil.DecPtr(t, "24.50")

	out, err := e.ApplyNew(txn)
	testutil.AssertNoError(t, err)

	testutil.AssertDecimalPtr(t, out.GrossCost, "25.00")
	testutil.AssertDecimalPtr(t, out.NetCost, "24.50")
	if out.RealizedGainLoss != nil {
		t.Errorf("passthrough types never realize gain/loss, got %s", out.RealizedGainLoss)
	}

	// The ledger is untouched.
	sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "1", "100")
	if _, err := e.ApplyNew(sell); err == nil {
		t.Fatal("expected insufficient holdings error")
	}
}

func TestApplyExisting(t *testing.T) {
	t.Run("replayed_sell_consumes_holdings", func(t *testing.T) {
		fifo := costbasis.NewFIFOStrategy()
		e := New(fifo)

		buy := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1000.00")
		buy.GrossCost = testutil.DecPtr(t, "1000.00")
		buy.NetCost = testutil.DecPtr(t, "1005.00")
		e.ApplyExisting(buy)

		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "4", "450.00")
		e.ApplyExisting(sell)

		testutil.AssertDecimal(t, fifo.Available(sell.Key()), "6")
	})

	t.Run("oversold_replay_does_not_disturb_ledger", func(t *testing.T) {
		fifo := costbasis.NewFIFOStrategy()
		e := New(fifo)

		buy := testutil.BuyTransaction("buy_001", "PORT001", "AAPL", testutil.Day(1), "10", "1000.00")
		e.ApplyExisting(buy)

		sell := testutil.SellTransaction("sell_001", "PORT001", "AAPL", testutil.Day(2), "11", "1200.00")
		e.ApplyExisting(sell)

		testutil.AssertDecimal(t, fifo.Available(sell.Key()), "10")
	})

	t.Run("passthrough_types_are_ignored", func(t *testing.T) {
		fifo := costbasis.NewFIFOStrategy()
		e := New(fifo)

		txn := testutil.BuyTransaction("int_001", "PORT001", "AAPL", testutil.Day(1), "10", "50.00")
		txn.TransactionType = models.TransactionTypeInterest
		e.ApplyExisting(txn)

		testutil.AssertDecimal(t, fifo.Available(txn.Key()), "0")
	})
}
