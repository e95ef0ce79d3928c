package intent

import "testing"

func TestScoreConfidenceIsMaxOfAllScores(t *testing.T) {
	inputs := []string{
		"how do i buy ticket with upi",
		"my wallet won't connect",
		"validate ticket with totp code 123456",
		"tell me something",
		"",
	}
	for _, in := range inputs {
		res := Score(in)
		max := 0.0
		for _, s := range res.AllScores {
			if s > max {
				max = s
			}
		}
		if res.Confidence != max {
			t.Fatalf("input %q: confidence %v != max score %v", in, res.Confidence, max)
		}
	}
}

func TestScoreFallsBackToGeneralInfo(t *testing.T) {
	res := Score("xyzzy plugh quux")
	if res.Intent != GeneralInfo {
		t.Fatalf("expected %s, got %s", GeneralInfo, res.Intent)
	}
	if res.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", res.Confidence)
	}
}

func TestScoreClassification(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"I want to buy ticket using upi", TicketPurchase},
		{"generate ticket qr code with authenticator", TicketGeneration},
		{"validate ticket totp code please", TicketValidation},
		{"my metamask wallet connection failed", WalletConnection},
		{"how to trade nft on the marketplace", NFTMarketplace},
		{"transaction error card declined", PaymentIssues},
		{"what is truepass", GeneralInfo},
	}
	for _, tc := range cases {
		res := Score(tc.input)
		if res.Intent != tc.want {
			t.Fatalf("input %q: expected %s, got %s (scores %v)", tc.input, tc.want, res.Intent, res.AllScores)
		}
	}
}

func TestScoreKeywordAndBoostWeights(t *testing.T) {
	// "inr" is a ticket_purchase keyword (2), "upi" a ticket_purchase
	// boost (3); two words total.
	res := Score("inr upi")
	want := float64(2+3) / 2
	if res.AllScores[TicketPurchase] != want {
		t.Fatalf("expected ticket_purchase score %v, got %v", want, res.AllScores[TicketPurchase])
	}
}

func TestScoreLengthNormalization(t *testing.T) {
	short := Score("buy ticket")
	long := Score("buy ticket please because I would really like to attend this concert next month somehow")
	if long.AllScores[TicketPurchase] >= short.AllScores[TicketPurchase] {
		t.Fatalf("expected longer utterance to score lower: short=%v long=%v",
			short.AllScores[TicketPurchase], long.AllScores[TicketPurchase])
	}
}

func TestScoreTieBreakIsRegistrationOrder(t *testing.T) {
	// "pay" (ticket_purchase) and "nft" (nft_marketplace) are each a
	// single keyword hit, so both patterns score identically.
	res := Score("pay nft")
	if res.AllScores[TicketPurchase] != res.AllScores[NFTMarketplace] {
		t.Fatalf("expected a tie, got %v vs %v", res.AllScores[TicketPurchase], res.AllScores[NFTMarketplace])
	}
	if res.Intent != TicketPurchase {
		t.Fatalf("expected first-registered pattern to win tie, got %s", res.Intent)
	}
	// Determinism across runs.
	for i := 0; i < 50; i++ {
		if again := Score("pay nft"); again.Intent != res.Intent {
			t.Fatalf("tie-break not deterministic: %s then %s", res.Intent, again.Intent)
		}
	}
}

func TestScoreEntitiesOnlyFromWinningPattern(t *testing.T) {
	res := Score("validate ticket totp code 123456 token id tk42")
	if res.Intent != TicketValidation {
		t.Fatalf("expected ticket_validation, got %s", res.Intent)
	}
	p, _ := PatternFor(res.Intent)
	declared := map[string]bool{}
	for _, e := range p.Entities {
		declared[e] = true
	}
	for k := range res.Entities {
		if !declared[k] {
			t.Fatalf("entity %q not declared by winning pattern", k)
		}
	}
	if res.Entities["totp_code"] != "123456" {
		t.Fatalf("expected totp_code 123456, got %q", res.Entities["totp_code"])
	}
}
