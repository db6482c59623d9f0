package fundfees

import "testing"

func TestSubscriptionFee(t *testing.T) {
	investment := M(100_000, "USD")

	if got := SubscriptionFee(investment, 150, nil); !got.Equal(M(1500, "USD")) {
		t.Errorf("SubscriptionFee(100000, 150) = %s, want $1,500.00", got)
	}
	// the flat amount takes precedence over the rate
	flat := M(999, "USD")
	if got := SubscriptionFee(investment, 150, &flat); !got.Equal(flat) {
		t.Errorf("flat fee not honored: got %s", got)
	}
	// no rate, no fee
	if got := SubscriptionFee(investment, 0, nil); !got.IsZero() {
		t.Errorf("SubscriptionFee without a rate = %s, want 0", got)
	}
	if got := SubscriptionFee(investment, -100, nil); !got.IsZero() {
		t.Errorf("SubscriptionFee with a negative rate = %s, want 0", got)
	}
}

func TestManagementFee(t *testing.T) {
	investment := M(100_000, "USD")

	if got := ManagementFee(investment, 200, false, 0); !got.Equal(M(2000, "USD")) {
		t.Errorf("ManagementFee = %s, want $2,000.00", got)
	}
	// an upfront fee for 3 periods is charged once for the whole duration
	if got := ManagementFee(investment, 200, true, 3); !got.Equal(M(6000, "USD")) {
		t.Errorf("upfront ManagementFee for 3 periods = %s, want $6,000.00", got)
	}
	// not upfront: the duration does not multiply
	if got := ManagementFee(investment, 200, false, 3); !got.Equal(M(2000, "USD")) {
		t.Errorf("accruing ManagementFee = %s, want $2,000.00", got)
	}
	if got := ManagementFee(investment, 0, true, 3); !got.IsZero() {
		t.Errorf("ManagementFee without a rate = %s, want 0", got)
	}
}

func TestSpread(t *testing.T) {
	if got := Spread(Q(1000), M(10.5, "USD"), M(10, "USD")); !got.Equal(M(500, "USD")) {
		t.Errorf("Spread = %s, want $500.00", got)
	}
	// no markup below cost
	if got := Spread(Q(1000), M(10, "USD"), M(10.5, "USD")); !got.IsZero() {
		t.Errorf("negative spread = %s, want 0", got)
	}
	if got := Spread(Q(1000), M(10, "USD"), M(10, "USD")); !got.IsZero() {
		t.Errorf("flat spread = %s, want 0", got)
	}
}

func TestIntroducerCommission(t *testing.T) {
	gross := M(10_000, "USD")
	if got := IntroducerCommission(gross, 500); !got.Equal(M(500, "USD")) {
		t.Errorf("IntroducerCommission = %s, want $500.00", got)
	}
	if got := NetFeeRetained(gross, 500); !got.Equal(M(9500, "USD")) {
		t.Errorf("NetFeeRetained = %s, want $9,500.00", got)
	}
	if got := NetFeeRetained(gross, 0); !got.Equal(gross) {
		t.Errorf("NetFeeRetained without commission = %s, want the gross fee", got)
	}
}

func TestTotalWireAmount(t *testing.T) {
	if got := TotalWireAmount(M(100_000, "USD"), 150); !got.Equal(M(101_500, "USD")) {
		t.Errorf("TotalWireAmount = %s, want $101,500.00", got)
	}
	if got := TotalWireAmount(M(100_000, "USD"), 0); !got.Equal(M(100_000, "USD")) {
		t.Errorf("TotalWireAmount without a fee = %s, want the investment", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(M(1234.5, "USD")); got != "$1,234.50" {
		t.Errorf("FormatCurrency = %q, want %q", got, "$1,234.50")
	}
	// currency-weak amounts render as USD
	if got := FormatCurrency(M(0, "")); got != "$0.00" {
		t.Errorf("FormatCurrency of weak zero = %q, want %q", got, "$0.00")
	}
}
