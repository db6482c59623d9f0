package fundfees

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(0, "USD"), "$0.00"},
		{M(-42.1, "USD"), "-$42.10"},
		{M(1000000, "EUR"), "€1,000,000.00"},
		{M(0, ""), "$0.00"}, // weak currency formats as USD
	}
	for _, test := range tests {
		if got := test.m.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	sum := M(0, "").Add(M(100, "USD"))
	if sum.Currency() != "USD" {
		t.Errorf("weak + USD currency = %q, want USD", sum.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixed-currency Add did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoneyMulRate(t *testing.T) {
	base := M(1_000_000, "USD")
	if got := base.MulRate(200); !got.Equal(M(20_000, "USD")) {
		t.Errorf("1M at 200 bps = %s, want $20,000.00", got)
	}
	if got := base.MulRate(0); !got.IsZero() {
		t.Errorf("zero rate = %s, want 0", got)
	}
	if got := base.MulRate(-50); !got.IsZero() {
		t.Errorf("negative rate = %s, want 0", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(M(1234.567, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	// marshalling rounds to the currency's fraction digits
	if want := `{"currency":"USD","amount":"1234.57"}`; string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var m Money
	if err := json.Unmarshal([]byte(`{"currency":"EUR","amount":"99.95"}`), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(99.95, "EUR")) {
		t.Errorf("unmarshal = %s, want €99.95", m)
	}
}
