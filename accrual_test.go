package fundfees

import "testing"

func TestManagementFeeForPeriod(t *testing.T) {
	base := M(1_000_000, "USD")

	// 2% over Q1 2024: 91 inclusive days of a leap year, actual/365
	fee := ManagementFeeForPeriod(200, base, MustParseDate("2024-01-01"), MustParseDate("2024-03-31"))
	if got := fee.Round(2); !got.Equal(M(4986.30, "USD")) {
		t.Errorf("Q1 2024 fee = %s, want $4,986.30", got)
	}

	// a full non-leap year accrues exactly the annual fee
	fee = ManagementFeeForPeriod(200, base, MustParseDate("2023-01-01"), MustParseDate("2023-12-31"))
	if !fee.Equal(M(20_000, "USD")) {
		t.Errorf("full year fee = %s, want $20,000.00", fee)
	}

	// a single day accrues 1/365 of the annual fee
	fee = ManagementFeeForPeriod(200, base, MustParseDate("2023-06-15"), MustParseDate("2023-06-15"))
	if got := fee.Round(2); !got.Equal(M(54.79, "USD")) {
		t.Errorf("single day fee = %s, want $54.79", got)
	}
}

func TestManagementFeeForPeriodZeroCases(t *testing.T) {
	base := M(1_000_000, "USD")
	start, end := MustParseDate("2024-01-01"), MustParseDate("2024-03-31")

	if got := ManagementFeeForPeriod(0, base, start, end); !got.IsZero() {
		t.Errorf("fee without a rate = %s, want 0", got)
	}
	if got := ManagementFeeForPeriod(-200, base, start, end); !got.IsZero() {
		t.Errorf("fee with a negative rate = %s, want 0", got)
	}
	if got := ManagementFeeForPeriod(200, M(0, "USD"), start, end); !got.IsZero() {
		t.Errorf("fee on a zero base = %s, want 0", got)
	}
	if got := ManagementFeeForPeriod(200, base, end, start); !got.IsZero() {
		t.Errorf("fee on an inverted range = %s, want 0", got)
	}
}
