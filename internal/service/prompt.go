package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/truepass/chatbot-backend/internal/intent"
	"github.com/truepass/chatbot-backend/internal/knowledge"
)

const systemPrompt = `You are the official AI assistant for TruePass, an innovative NFT marketplace and blockchain ticket validation platform. You are knowledgeable, helpful, and friendly.

PLATFORM OVERVIEW:
TruePass combines NFT marketplace functionality with blockchain-based ticket validation using TOTP (Time-based One-Time Passwords). Users can buy NFTs and tickets using Indian Rupees through UPI, Paytm, credit cards, etc.

YOUR EXPERTISE:
- NFT Marketplace: Help users buy, sell, trade NFTs with INR payments
- Blockchain Tickets: Guide through TOTP-based ticket generation and validation
- Payment Processing: Assist with INR payments, wallet connections, conversions
- Technical Support: Troubleshoot wallet, payment, and validation issues
- User Onboarding: Help new users get started with crypto and blockchain

COMMUNICATION STYLE:
- Be warm, patient, and encouraging
- Use simple language for complex blockchain concepts
- Provide step-by-step instructions with clear numbering
- Ask clarifying questions when user needs are unclear
- Always prioritize user security and best practices

RESPONSE FORMAT:
- Start with a brief, direct answer
- Provide detailed steps when needed
- Include relevant tips or warnings
- Suggest next steps or related help
- Use Indian context (₹, UPI, etc.) when relevant

Remember: You're helping users navigate both traditional payments and cutting-edge blockchain technology. Make it accessible and exciting!`

// buildSystemPrompt assembles the persona prompt plus the turn context:
// current page, detected intent, the knowledge sections mapped to that
// intent, and any extracted entities.
func buildSystemPrompt(kb *knowledge.Base, res intent.Result, currentPage string) string {
	var parts []string

	if currentPage != "" {
		parts = append(parts, fmt.Sprintf("User is currently on the %s page of TruePass.", currentPage))
	}
	parts = append(parts, fmt.Sprintf("User intent detected: %s", res.Intent))

	// Fixed intent -> knowledge-section mapping.
	switch res.Intent {
	case intent.TicketPurchase:
		parts = append(parts, "TICKET PURCHASE CONTEXT:")
		parts = append(parts, mustJSON(kb.Guides.BuyingTicketsINR))
		parts = append(parts, mustJSON(kb.Features.INRPayments))
	case intent.TicketGeneration:
		parts = append(parts, "TICKET GENERATION CONTEXT:")
		parts = append(parts, mustJSON(kb.Guides.TicketGeneration))
		parts = append(parts, mustJSON(kb.Features.BlockchainTickets))
	case intent.TicketValidation:
		parts = append(parts, "TICKET VALIDATION CONTEXT:")
		parts = append(parts, mustJSON(kb.Guides.TicketValidation))
	case intent.WalletConnection:
		parts = append(parts, "WALLET CONNECTION CONTEXT:")
		parts = append(parts, mustJSON(kb.Guides.FirstTimeSetup))
		parts = append(parts, mustJSON(kb.Troubleshooting.WalletIssues))
	case intent.NFTMarketplace:
		parts = append(parts, "NFT MARKETPLACE CONTEXT:")
		parts = append(parts, mustJSON(kb.Features.NFTMarketplace))
	case intent.PaymentIssues:
		parts = append(parts, "PAYMENT TROUBLESHOOTING CONTEXT:")
		parts = append(parts, mustJSON(kb.Troubleshooting.PaymentIssues))
	case intent.TechnicalSupport:
		parts = append(parts, "TECHNICAL SUPPORT CONTEXT:")
		parts = append(parts, mustJSON(kb.Troubleshooting))
		parts = append(parts, mustJSON(kb.Technical))
	}

	if len(res.Entities) > 0 {
		parts = append(parts, fmt.Sprintf("Extracted entities: %s", mustJSON(res.Entities)))
	}

	return systemPrompt + "\n\nCURRENT CONTEXT:\n" + strings.Join(parts, "\n")
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
