package render

import "testing"

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter("en-US", "NGN")
	if err != nil {
		t.Fatalf("failed to build formatter: %v", err)
	}
	return f
}

func TestNumber_GroupsAndRounds(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		in   float64
		want string
	}{
		{1000, "1,000"},
		{700, "700"},
		{0, "0"},
		{1234567.89, "1,234,568"},
		{2.4, "2"},
		{2.5, "3"},
	}

	for _, c := range cases {
		if got := f.Number(c.in); got != c.want {
			t.Errorf("Number(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecimal_TwoFractionDigits(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		in   float64
		want string
	}{
		{1000, "1,000.00"},
		{3.14159, "3.14"},
		{0, "0.00"},
	}

	for _, c := range cases {
		if got := f.Decimal(c.in); got != c.want {
			t.Errorf("Decimal(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCurrency_PrefixesNairaSymbol(t *testing.T) {
	f := newTestFormatter(t)

	if got := f.Currency(1500); got != "₦1,500.00" {
		t.Errorf("Currency(1500) = %q, want %q", got, "₦1,500.00")
	}
}

func TestNewFormatter_RejectsBadInputs(t *testing.T) {
	if _, err := NewFormatter("not a locale", "NGN"); err == nil {
		t.Error("expected error for invalid locale, got nil")
	}
	if _, err := NewFormatter("en-US", "XYZ_BAD"); err == nil {
		t.Error("expected error for invalid currency, got nil")
	}
}
