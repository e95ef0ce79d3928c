package intent

// Intent categories. The declaration order below is the registration
// order of the pattern table: on equal non-zero scores the earlier
// pattern wins, so this order is part of the classifier's contract.
const (
	TicketPurchase   = "ticket_purchase"
	TicketGeneration = "ticket_generation"
	TicketValidation = "ticket_validation"
	WalletConnection = "wallet_connection"
	NFTMarketplace   = "nft_marketplace"
	PaymentIssues    = "payment_issues"
	TechnicalSupport = "technical_support"
	GeneralInfo      = "general_info"
)

// Pattern couples an intent with the keyword sets that vote for it and
// the entities worth extracting once it wins.
type Pattern struct {
	Name     string
	Keywords []string
	Boosts   []string
	Entities []string
}

var patterns = []Pattern{
	{
		Name:     TicketPurchase,
		Keywords: []string{"buy ticket", "purchase ticket", "ticket price", "book ticket", "inr", "rupee", "pay"},
		Boosts:   []string{"upi", "paytm", "credit card", "payment"},
		Entities: []string{"price", "payment_method", "ticket_type"},
	},
	{
		Name:     TicketGeneration,
		Keywords: []string{"generate ticket", "create ticket", "mint ticket", "new ticket", "totp", "qr code"},
		Boosts:   []string{"authenticator", "google authenticator", "secret key"},
		Entities: []string{"event_name", "expiry_time", "ticket_id"},
	},
	{
		Name:     TicketValidation,
		Keywords: []string{"validate ticket", "verify ticket", "check ticket", "authentication", "totp code"},
		Boosts:   []string{"6 digit", "authenticator code", "validation failed"},
		Entities: []string{"token_id", "totp_code", "validation_status"},
	},
	{
		Name:     WalletConnection,
		Keywords: []string{"wallet", "metamask", "connect wallet", "wallet connection", "ethereum"},
		Boosts:   []string{"can't connect", "connection failed", "wallet error"},
		Entities: []string{"wallet_type", "error_message", "network"},
	},
	{
		Name:     NFTMarketplace,
		Keywords: []string{"nft", "marketplace", "collection", "buy nft", "sell nft", "trade"},
		Boosts:   []string{"opensea", "digital art", "collectible"},
		Entities: []string{"nft_type", "collection_name", "price_range"},
	},
	{
		Name:     PaymentIssues,
		Keywords: []string{"payment failed", "transaction error", "payment not working", "can't pay"},
		Boosts:   []string{"upi failed", "card declined", "payment timeout"},
		Entities: []string{"payment_method", "error_code", "amount"},
	},
	{
		Name:     TechnicalSupport,
		Keywords: []string{"error", "not working", "problem", "issue", "help", "stuck"},
		Boosts:   []string{"browser", "mobile", "slow", "crashed"},
		Entities: []string{"error_type", "device_type", "browser"},
	},
	{
		Name:     GeneralInfo,
		Keywords: []string{"what is", "how does", "explain", "about", "overview", "features"},
		Boosts:   []string{"truepass", "blockchain", "crypto"},
		Entities: []string{"topic", "feature_name"},
	},
}

// Patterns returns the pattern table in registration order.
func Patterns() []Pattern {
	return patterns
}

// PatternFor looks up the pattern for a known intent name.
func PatternFor(name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
