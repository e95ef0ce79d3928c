package intent

import "testing"

func TestExtractPrice(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"₹500", "500"},
		{"it costs 250 rupees", "250"},
		{"the price is ₹1,500 right?", "1500"},
	}
	for _, tc := range cases {
		got := Extract(tc.input, []string{"price"})
		if got["price"] != tc.want {
			t.Fatalf("input %q: expected price %q, got %q", tc.input, tc.want, got["price"])
		}
	}
}

func TestExtractPaymentMethod(t *testing.T) {
	got := Extract("Can I pay with UPI?", []string{"payment_method"})
	if got["payment_method"] != "upi" {
		t.Fatalf("expected upi, got %q", got["payment_method"])
	}

	// Fixed priority order: upi beats later methods when both appear.
	got = Extract("should I use net banking or UPI", []string{"payment_method"})
	if got["payment_method"] != "upi" {
		t.Fatalf("expected upi by priority, got %q", got["payment_method"])
	}
}

func TestExtractTokenID(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"my token id: abc123", "abc123"},
		{"token TK99 won't validate", "tk99"},
		{"Token ID xyz", "xyz"},
	}
	for _, tc := range cases {
		got := Extract(tc.input, []string{"token_id"})
		if got["token_id"] != tc.want {
			t.Fatalf("input %q: expected token_id %q, got %q", tc.input, tc.want, got["token_id"])
		}
	}
}

func TestExtractTOTPCode(t *testing.T) {
	got := Extract("My code is 123456", []string{"totp_code"})
	if got["totp_code"] != "123456" {
		t.Fatalf("expected 123456, got %q", got["totp_code"])
	}

	// Exactly six digits: longer runs must not match.
	got = Extract("order 1234567 failed", []string{"totp_code"})
	if _, ok := got["totp_code"]; ok {
		t.Fatalf("expected no totp_code for a 7-digit run, got %q", got["totp_code"])
	}
}

func TestExtractUnmatchedEntitiesAbsent(t *testing.T) {
	got := Extract("hello there", []string{"price", "payment_method", "token_id", "totp_code"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestExtractOnlyRequestedEntities(t *testing.T) {
	got := Extract("pay ₹500 with upi, code 123456", []string{"price"})
	if len(got) != 1 || got["price"] != "500" {
		t.Fatalf("expected only price, got %v", got)
	}
}
