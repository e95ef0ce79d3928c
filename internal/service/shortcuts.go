package service

import "strings"

// Canned topics.
const (
	topicWelcome         = "welcome"
	topicTicketBuying    = "ticket_buying"
	topicWalletSetup     = "wallet_setup"
	topicTOTPExplainer   = "totp_explanation"
	topicPaymentMethods  = "payment_methods"
	topicTroubleshooting = "troubleshooting"
)

type shortcutRule struct {
	keywords []string
	topic    string
}

// Scanned in order; the first rule with any substring hit wins. The
// ordering is a priority policy: greetings before purchase before
// wallet before validation before payment before generic error words.
var shortcutRules = []shortcutRule{
	{keywords: []string{"hello", "hi", "hey", "welcome"}, topic: topicWelcome},
	{keywords: []string{"buy ticket", "purchase ticket", "ticket price"}, topic: topicTicketBuying},
	{keywords: []string{"wallet", "metamask", "connect wallet"}, topic: topicWalletSetup},
	{keywords: []string{"totp", "validation", "authenticate", "verification"}, topic: topicTOTPExplainer},
	{keywords: []string{"payment", "upi", "paytm", "credit card"}, topic: topicPaymentMethods},
	{keywords: []string{"error", "problem", "not working", "issue", "help"}, topic: topicTroubleshooting},
}

// matchShortcut returns the canned response for the first matching
// shortcut rule, if any. Input must already be lowercased.
func matchShortcut(lower string) (string, bool) {
	for _, rule := range shortcutRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return cannedResponses[rule.topic], true
			}
		}
	}
	return "", false
}

var cannedResponses = map[string]string{
	topicWelcome: `**Welcome to TruePass!**

Your gateway to NFTs and blockchain tickets with Indian Rupee payments!

**Quick Start:**
- New here? I'll guide you through wallet setup
- Want to buy tickets? Ask about our INR payment options
- Need to validate tickets? Learn about our TOTP system
- Exploring NFTs? Discover our marketplace features

**Popular Questions:**
- "How do I buy tickets with UPI?"
- "What is blockchain ticket validation?"
- "How do I connect my MetaMask wallet?"

What would you like to explore first?`,

	topicTicketBuying: `**Buying Tickets with INR - Super Easy!**

**Step-by-Step Process:**
1. **Browse** available tickets (prices shown in ₹)
2. **Connect** your Ethereum wallet (one-time setup)
3. **Select** your desired ticket and click 'Buy Now'
4. **Choose** payment: UPI, Paytm, or Credit Card
5. **Pay** in Indian Rupees - no crypto needed!
6. **Receive** your NFT ticket automatically in wallet

**Key Benefits:**
- No need to buy crypto first
- All major Indian payment methods supported
- Instant ticket delivery to your wallet
- Secure blockchain ownership

**Need help with any step?** Just ask!`,

	topicWalletSetup: `**MetaMask Wallet Setup - Made Simple!**

**Installation & Setup:**
1. **Download** MetaMask browser extension
2. **Create** new wallet or import existing one
3. **Secure** your seed phrase (keep it safe!)
4. **Visit** TruePass and click 'Connect Wallet'
5. **Approve** connection in MetaMask popup
6. **Ready!** You can now buy NFTs and tickets

**Security Tips:**
- Never share your seed phrase with anyone
- Use strong passwords
- Enable 2FA when possible
- Bookmark official TruePass URL

**Having connection issues?** I can help troubleshoot!

**Mobile Users:** MetaMask mobile app works great too!`,

	topicTOTPExplainer: `**TOTP Ticket Validation - Advanced Security!**

**What is TOTP?**
Time-based One-Time Password - generates unique 6-digit codes every 30 seconds

**How It Works:**
1. **Generate** ticket with unique QR code
2. **Scan** QR with Google Authenticator app
3. **Mint** NFT ticket on blockchain
4. **Validate** using current 6-digit code from app
5. **Verify** authenticity instantly

**Why It's Amazing:**
- Prevents ticket fraud and counterfeiting
- Works offline (no internet needed for validation)
- Codes change every 30 seconds
- Non-transferable tickets stop scalping
- Blockchain-verified authenticity

**Supported Apps:** Google Authenticator, Authy, Microsoft Authenticator

**Want to create your first TOTP ticket?** I'll guide you through it!`,

	topicPaymentMethods: `**TruePass Payment Methods - Choose What's Best for You!**

**Supported Indian Payment Methods:**

**UPI Payments**
- PhonePe, Google Pay, Paytm UPI
- Instant transfers
- Most popular choice

**Credit/Debit Cards**
- Visa, MasterCard, RuPay
- Secure encrypted processing
- International cards accepted

**Net Banking**
- All major Indian banks
- Direct bank transfers
- Highly secure

**Digital Wallets**
- Paytm Wallet
- Other supported wallets

**Security Features:**
- PCI DSS compliant processing
- 256-bit SSL encryption
- No card details stored
- Instant refund policy

**Automatic Conversion:**
Your INR payment -> Transak conversion -> ETH -> NFT minting
*All happens behind the scenes!*

**Any payment questions?** I'm here to help!`,

	topicTroubleshooting: `**TruePass Troubleshooting Guide**

**Wallet Connection Issues:**
- Unlock MetaMask and refresh page
- Clear browser cache and cookies
- Check you're on Ethereum network
- Disable other wallet extensions temporarily

**Payment Problems:**
- Verify sufficient balance in payment method
- Check internet connection stability
- Try alternative payment method
- Wait 5-10 minutes for processing

**Ticket Validation Issues:**
- Sync device time (very important!)
- Generate fresh code from authenticator
- Check ticket hasn't expired
- Verify correct Token ID

**General Issues:**
- Use supported browsers (Chrome, Firefox, Safari)
- Update to latest browser version
- Disable ad blockers temporarily
- Try incognito/private mode

**Still Need Help?**
- Contact our support team
- Join TruePass community Discord
- Check our detailed FAQ section

**I can provide specific help too - just describe your issue!**`,
}
