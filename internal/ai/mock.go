package ai

import (
	"context"
	"fmt"

	"github.com/truepass/chatbot-backend/internal/models"
	"github.com/truepass/chatbot-backend/internal/utils"
)

// MockCompleter produces deterministic offline answers keyed on the
// user message. Used when no API key is configured, and in tests.
type MockCompleter struct {
	ModelVersion string
	// Err, when set, makes every call fail. Lets tests exercise the
	// completion-failure path.
	Err error
}

var mockAnswers = []string{
	"Here's what I found for you. You can buy NFT tickets on TruePass with UPI, card, or net banking, and the NFT is minted to your connected wallet automatically.",
	"TruePass tickets are validated with 6-digit TOTP codes that rotate every 30 seconds, so validation works even without an internet connection.",
	"Make sure your MetaMask wallet is unlocked and connected to the Ethereum network, then retry the action from the TruePass page you were on.",
	"Your INR payment is converted to ETH through Transak before minting; during busy periods this can take 5-10 minutes to settle.",
}

func (m MockCompleter) Complete(ctx context.Context, system string, history []models.ConversationTurn, message string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	h := utils.HashStringToUint64(message)
	answer := mockAnswers[h%uint64(len(mockAnswers))]
	return fmt.Sprintf("%s (model %s)", answer, m.ModelVersion), nil
}
