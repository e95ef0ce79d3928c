package intent

import (
	"regexp"
	"strings"
)

var (
	priceRe = regexp.MustCompile(`₹?(\d+(?:,\d+)*)`)
	tokenRe = regexp.MustCompile(`token\s*(?:id)?\s*:?\s*(\w+)`)
	totpRe  = regexp.MustCompile(`\b(\d{6})\b`)
)

// Checked in priority order: the first method present in the text wins.
var paymentMethods = []string{"upi", "paytm", "credit card", "debit card", "net banking"}

// Extract pulls the requested entities out of free text. Each entity
// name has one fixed rule; names that do not match are simply absent
// from the result. Entities outside the requested list are never
// computed.
func Extract(text string, entityNames []string) map[string]string {
	entities := map[string]string{}
	lower := strings.ToLower(text)

	for _, name := range entityNames {
		switch name {
		case "price":
			if m := priceRe.FindStringSubmatch(text); m != nil {
				entities["price"] = strings.ReplaceAll(m[1], ",", "")
			}
		case "payment_method":
			for _, method := range paymentMethods {
				if strings.Contains(lower, method) {
					entities["payment_method"] = method
					break
				}
			}
		case "token_id":
			if m := tokenRe.FindStringSubmatch(lower); m != nil {
				entities["token_id"] = m[1]
			}
		case "totp_code":
			if m := totpRe.FindStringSubmatch(text); m != nil {
				entities["totp_code"] = m[1]
			}
		}
	}
	return entities
}
