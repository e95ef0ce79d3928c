// Package knowledge holds the static TruePass platform facts that feed
// prompt assembly. The base is built once at startup and treated as
// read-only; it is injected into the chat service rather than accessed
// as a global.
package knowledge

type PlatformInfo struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	KeyBenefits []string `json:"key_benefits"`
}

type Marketplace struct {
	Description      string   `json:"description"`
	Capabilities     []string `json:"capabilities"`
	SupportedWallets []string `json:"supported_wallets"`
	Blockchains      []string `json:"blockchains"`
}

type BlockchainTickets struct {
	Description       string   `json:"description"`
	SecurityFeatures  []string `json:"security_features"`
	SupportedApps     []string `json:"supported_apps"`
	ValidationProcess string   `json:"validation_process"`
}

type INRPayments struct {
	Description      string   `json:"description"`
	SupportedMethods []string `json:"supported_methods"`
	PaymentFlow      string   `json:"payment_flow"`
	Security         string   `json:"security"`
}

type Features struct {
	NFTMarketplace    Marketplace       `json:"nft_marketplace"`
	BlockchainTickets BlockchainTickets `json:"blockchain_tickets"`
	INRPayments       INRPayments       `json:"inr_payments"`
}

type Guides struct {
	FirstTimeSetup   []string `json:"first_time_setup"`
	BuyingTicketsINR []string `json:"buying_tickets_inr"`
	TicketGeneration []string `json:"ticket_generation"`
	TicketValidation []string `json:"ticket_validation"`
}

type WalletIssues struct {
	ConnectionFailed  []string `json:"connection_failed"`
	TransactionFailed []string `json:"transaction_failed"`
}

type PaymentIssues struct {
	INRPaymentFailed []string `json:"inr_payment_failed"`
	ConversionIssues []string `json:"conversion_issues"`
}

type TicketProblems struct {
	TOTPInvalid      []string `json:"totp_invalid"`
	ValidationFailed []string `json:"validation_failed"`
}

type Troubleshooting struct {
	WalletIssues   WalletIssues   `json:"wallet_issues"`
	PaymentIssues  PaymentIssues  `json:"payment_issues"`
	TicketProblems TicketProblems `json:"ticket_problems"`
}

type TechnicalRequirements struct {
	BrowserSupport      []string `json:"browser_support"`
	MobileSupport       []string `json:"mobile_support"`
	RequiredExtensions  []string `json:"required_extensions"`
	NetworkRequirements string   `json:"network_requirements"`
}

type Base struct {
	Platform        PlatformInfo          `json:"platform_info"`
	Features        Features              `json:"features"`
	Guides          Guides                `json:"user_guides"`
	Troubleshooting Troubleshooting       `json:"troubleshooting"`
	Technical       TechnicalRequirements `json:"technical_requirements"`
}

// FeatureNames lists the feature keys exposed to the frontend context
// payload, in a fixed order.
func (b *Base) FeatureNames() []string {
	return []string{"nft_marketplace", "blockchain_tickets", "inr_payments"}
}

// Default returns the TruePass knowledge base.
func Default() *Base {
	return &Base{
		Platform: PlatformInfo{
			Name:        "TruePass",
			Tagline:     "NFT Marketplace & Blockchain Ticket Validation with INR Payments",
			Description: "A decentralized marketplace for NFTs with integrated blockchain-based ticket validation system",
			KeyBenefits: []string{
				"Buy NFTs and tickets with Indian Rupees",
				"Secure blockchain validation using TOTP",
				"Non-transferable tickets to prevent resale",
				"Gasless minting with ECDSA signatures",
				"Offline validation capability",
			},
		},
		Features: Features{
			NFTMarketplace: Marketplace{
				Description: "Complete NFT trading platform with INR support",
				Capabilities: []string{
					"Browse and search NFT collections",
					"Buy, sell, and trade NFTs with Indian Rupee payments",
					"Connect Ethereum wallets (MetaMask, WalletConnect)",
					"View detailed transaction history",
					"Manage user profiles and collections",
					"Automatic INR to ETH conversion",
				},
				SupportedWallets: []string{"MetaMask", "WalletConnect", "Coinbase Wallet"},
				Blockchains:      []string{"Ethereum", "Polygon (planned)"},
			},
			BlockchainTickets: BlockchainTickets{
				Description: "TOTP-based secure ticket validation system",
				SecurityFeatures: []string{
					"Time-based One-Time Passwords (TOTP)",
					"30-second code rotation",
					"QR code generation for authenticator apps",
					"Blockchain-based validation recording",
					"Offline validation support",
					"Non-transferable NFT tickets",
				},
				SupportedApps:     []string{"Google Authenticator", "Authy", "Microsoft Authenticator"},
				ValidationProcess: "Generate -> Authenticate -> Validate -> Record",
			},
			INRPayments: INRPayments{
				Description: "Seamless Indian payment integration",
				SupportedMethods: []string{
					"UPI (PhonePe, Google Pay, Paytm)",
					"Credit/Debit Cards",
					"Net Banking",
					"Paytm Wallet",
				},
				PaymentFlow: "INR Payment -> Transak Conversion -> ETH -> NFT Minting",
				Security:    "PCI DSS compliant, encrypted transactions",
			},
		},
		Guides: Guides{
			FirstTimeSetup: []string{
				"Install MetaMask browser extension",
				"Create or import Ethereum wallet",
				"Visit TruePass website",
				"Click 'Connect Wallet' button",
				"Approve wallet connection",
				"Complete profile setup",
			},
			BuyingTicketsINR: []string{
				"Browse available tickets (prices in ₹)",
				"Ensure wallet is connected",
				"Select desired ticket and click 'Buy Now'",
				"Choose payment method (UPI/Card/Net Banking)",
				"Complete payment in Indian Rupees",
				"Wait for automatic NFT minting",
				"Check wallet for your NFT ticket",
			},
			TicketGeneration: []string{
				"Navigate to 'Blockchain Tickets' page",
				"Click 'Generate Tickets' tab",
				"Enter ticket details (ID, event name, expiry)",
				"Click 'Generate QR Code'",
				"Scan QR code with authenticator app",
				"Save the secret key securely",
				"Fill blockchain details (recipient, seat, date)",
				"Click 'Mint Ticket NFT' to create on blockchain",
			},
			TicketValidation: []string{
				"Go to 'Blockchain Tickets' -> 'Validate Tickets'",
				"Select ticket from dropdown or enter Token ID",
				"Ask ticket holder for current 6-digit TOTP code",
				"Enter the code in validation field",
				"Click 'Validate Code' button",
				"See validation result (Valid/Invalid)",
				"Optionally click 'Validate on Blockchain' to record",
			},
		},
		Troubleshooting: Troubleshooting{
			WalletIssues: WalletIssues{
				ConnectionFailed: []string{
					"Ensure MetaMask is installed and unlocked",
					"Refresh the page and try again",
					"Check if MetaMask is on correct network (Ethereum)",
					"Clear browser cache and cookies",
					"Disable other wallet extensions temporarily",
					"Try using incognito/private browsing mode",
				},
				TransactionFailed: []string{
					"Check if you have sufficient ETH for gas fees",
					"Ensure network is not congested",
					"Try increasing gas price in MetaMask",
					"Wait and retry after a few minutes",
					"Check Ethereum network status",
				},
			},
			PaymentIssues: PaymentIssues{
				INRPaymentFailed: []string{
					"Verify payment method has sufficient balance",
					"Check internet connection stability",
					"Ensure payment app/bank is not under maintenance",
					"Try alternative payment method",
					"Clear browser cache and retry",
					"Contact bank if payment is declined",
				},
				ConversionIssues: []string{
					"Wait for Transak processing (can take 5-10 minutes)",
					"Check if conversion limits are exceeded",
					"Verify KYC status if required",
					"Contact Transak support for conversion issues",
				},
			},
			TicketProblems: TicketProblems{
				TOTPInvalid: []string{
					"Ensure device time is synchronized",
					"Check if ticket hasn't expired",
					"Generate fresh code from authenticator",
					"Verify correct secret was scanned",
					"Try manual entry of secret key",
				},
				ValidationFailed: []string{
					"Confirm correct Token ID is entered",
					"Check blockchain connection",
					"Verify ticket ownership",
					"Ensure ticket hasn't been used already",
				},
			},
		},
		Technical: TechnicalRequirements{
			BrowserSupport:      []string{"Chrome 90+", "Firefox 88+", "Safari 14+", "Edge 90+"},
			MobileSupport:       []string{"iOS 14+", "Android 8+"},
			RequiredExtensions:  []string{"MetaMask", "WalletConnect compatible wallet"},
			NetworkRequirements: "Stable internet connection for blockchain interactions",
		},
	}
}
