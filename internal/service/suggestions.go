package service

import "github.com/truepass/chatbot-backend/internal/intent"

const maxSuggestions = 8

var baseSuggestions = []string{
	"How do I buy tickets with UPI?",
	"What is blockchain ticket validation?",
	"How do I connect my MetaMask wallet?",
	"Can I use Paytm to buy NFTs?",
	"How does TOTP authentication work?",
	"What do I need to get started?",
	"Is my payment information secure?",
	"How do I validate someone's ticket?",
}

var contextualSuggestions = map[string][]string{
	intent.WalletConnection: {
		"I'm having wallet connection issues",
		"MetaMask won't connect to TruePass",
		"Do I need ETH in my wallet to buy tickets?",
	},
	intent.TicketPurchase: {
		"My payment failed, what should I do?",
		"How long does ticket delivery take?",
		"Can I get a refund on my ticket?",
	},
}

// SuggestedQuestions returns up to 8 follow-up questions. Suggestions
// tied to the session's last topic come first so they actually surface
// ahead of the generic set.
func SuggestedQuestions(lastTopic string) []string {
	out := make([]string, 0, maxSuggestions)
	out = append(out, contextualSuggestions[lastTopic]...)
	out = append(out, baseSuggestions...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
