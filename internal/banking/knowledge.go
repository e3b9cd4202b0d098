// Package banking carries the static self-service knowledge base and the
// keyword classifier that routes customer messages to it.
package banking

// Category groups guides and links by banking product area.
type Category string

const (
	CategoryAccount    Category = "account"
	CategoryCard       Category = "card"
	CategoryLoan       Category = "loan"
	CategoryTransfer   Category = "transfer"
	CategoryInvestment Category = "investment"
	CategoryInsurance  Category = "insurance"
	CategoryGeneral    Category = "general"
)

// Link points a customer at an external self-service resource.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Guide is a step-by-step walkthrough for a common banking issue.
type Guide struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Category       Category `json:"category"`
	Steps          []string `json:"steps"`
	ImportantNotes []string `json:"importantNotes,omitempty"`
	Links          []Link   `json:"links,omitempty"`
}

// SelfServiceLink is a portal entry offered in lieu of human support.
type SelfServiceLink struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Category    Category `json:"category"`
}

var guides = []Guide{
	{
		ID:          "lost-card",
		Title:       "Report Lost or Stolen Card",
		Description: "If your OCBC card is lost or stolen, report it immediately to prevent unauthorized use. Your card will be blocked instantly and a replacement will be issued.",
		Category:    CategoryCard,
		Steps: []string{
			"Call OCBC 24/7 hotline immediately: 1800 363 3333 (from Singapore) or +65 6363 3333 (from overseas)",
			"Or report via OCBC Mobile Banking app - Go to Cards > Report Lost Card",
			"Your card will be blocked immediately to prevent unauthorized transactions",
			"A replacement card will be sent within 5-7 business days to your registered address",
			"Check your account statements for any unauthorized transactions and report them immediately",
			"Update any recurring payments linked to the old card",
		},
		ImportantNotes: []string{
			"Report immediately - you are protected from unauthorized transactions if reported within 24 hours",
			"Replacement card fee may apply (check with customer service)",
			"Keep your card details secure and never share your PIN",
		},
		Links: []Link{
			{Text: "Report Lost Card Online", URL: "https://www.ocbc.com/personal-banking/cards/report-lost-card"},
			{Text: "OCBC Mobile Banking", URL: "https://www.ocbc.com/mobile-banking"},
			{Text: "Card Security Tips", URL: "https://www.ocbc.com/personal-banking/cards/security"},
		},
	},
	{
		ID:          "check-balance",
		Title:       "Check Account Balance",
		Description: "Multiple convenient ways to check your account balance anytime, anywhere. View your current balance, available balance, and transaction history.",
		Category:    CategoryAccount,
		Steps: []string{
			"Mobile Banking: Log in to OCBC Mobile Banking app and view balance on the home screen",
			"Internet Banking: Log in to OCBC Internet Banking and check your account dashboard",
			"ATM: Insert your card, enter PIN, and select \"Balance Inquiry\"",
			"SMS Banking: Text \"BAL\" to 72327 (charges may apply)",
			"Phone Banking: Call 1800 363 3333 and follow the automated prompts",
			"Branch: Visit any OCBC branch with your ID for balance inquiry",
		},
		ImportantNotes: []string{
			"Available balance may differ from current balance due to pending transactions",
			"SMS banking charges may apply - check with customer service",
			"For security, never share your PIN or OTP with anyone",
		},
		Links: []Link{
			{Text: "OCBC Mobile Banking", URL: "https://www.ocbc.com/mobile-banking"},
			{Text: "Internet Banking", URL: "https://www.ocbc.com/internet-banking"},
			{Text: "ATM Locator", URL: "https://www.ocbc.com/atm-locator"},
		},
	},
	{
		ID:          "open-account",
		Title:       "Open a New Account",
		Description: "Open a new OCBC account online or at a branch. Choose from various account types including Savings, Current, Fixed Deposit, and more.",
		Category:    CategoryAccount,
		Steps: []string{
			"Choose the account type that suits your needs (Savings, Current, Fixed Deposit, etc.)",
			"Online: Apply via OCBC website with digital submission of documents",
			"Branch: Visit any OCBC branch with required documents",
			"Required documents: NRIC/Passport (original), proof of address (utility bill, bank statement), employment letter (if applicable)",
			"Minimum initial deposit varies by account type (typically $500-$1,000 for savings)",
			"Complete the application form and submit for processing",
			"Account will be activated within 1-3 business days",
		},
		ImportantNotes: []string{
			"You must be at least 18 years old to open an account",
			"Some accounts may require minimum balance to avoid fees",
			"Online application is faster and more convenient",
			"Bring original documents for branch applications",
		},
		Links: []Link{
			{Text: "Open Account Online", URL: "https://www.ocbc.com/personal-banking/accounts"},
			{Text: "Account Types & Features", URL: "https://www.ocbc.com/personal-banking/accounts/types"},
			{Text: "Find Branch", URL: "https://www.ocbc.com/branch-locator"},
		},
	},
	{
		ID:          "transfer-money",
		Title:       "Transfer Money",
		Description: "Transfer funds to other OCBC accounts, other banks, or overseas. Fast, secure, and convenient money transfers with various options available.",
		Category:    CategoryTransfer,
		Steps: []string{
			"Log in to OCBC Mobile Banking or Internet Banking",
			"Select \"Transfer\" or \"Pay & Transfer\" from the main menu",
			"Choose transfer type: OCBC to OCBC, Other Banks (FAST), or Overseas Transfer",
			"Select recipient from saved list or add new recipient (requires verification)",
			"Enter transfer amount and select source account",
			"Review transaction details including fees (if applicable)",
			"Authenticate with OTP or biometric verification",
			"Confirm transaction - OCBC to OCBC transfers are instant, FAST transfers take minutes",
		},
		ImportantNotes: []string{
			"FAST transfers to other banks are usually instant (within minutes)",
			"Overseas transfers may take 1-3 business days and incur fees",
			"Daily transfer limits apply - check your account limits",
			"Keep recipient details accurate to avoid transfer delays",
		},
		Links: []Link{
			{Text: "Mobile Banking", URL: "https://www.ocbc.com/mobile-banking"},
			{Text: "Transfer Guide & Fees", URL: "https://www.ocbc.com/personal-banking/transfers"},
			{Text: "Overseas Transfer", URL: "https://www.ocbc.com/personal-banking/transfers/overseas"},
		},
	},
	{
		ID:       "forgot-password",
		Title:    "Reset Internet Banking Password",
		Category: CategoryAccount,
		Steps: []string{
			"Go to OCBC Internet Banking login page",
			"Click \"Forgot Password\"",
			"Enter your User ID and registered mobile number",
			"Verify with OTP sent to your mobile",
			"Set a new password following security requirements",
		},
		Links: []Link{
			{Text: "Reset Password", URL: "https://www.ocbc.com/internet-banking/reset-password"},
		},
	},
	{
		ID:          "card-activation",
		Title:       "Activate New Card",
		Description: "Activate your new OCBC credit or debit card to start using it. Activation is quick and can be done via phone, mobile app, or ATM.",
		Category:    CategoryCard,
		Steps: []string{
			"Receive your new card via registered mail (usually within 5-7 business days)",
			"Phone: Call OCBC hotline 1800 363 3333 and follow automated prompts",
			"Mobile App: Log in to OCBC Mobile Banking > Cards > Activate Card",
			"Enter card details (16-digit card number, expiry date, CVV)",
			"Verify your identity with OTP sent to registered mobile",
			"Set your PIN at any OCBC ATM within 30 days of activation",
		},
		ImportantNotes: []string{
			"Activate your card within 30 days of receipt",
			"Your card is not active until you complete activation",
			"Keep your card details secure and never share your PIN",
			"If you don't receive your card, contact customer service immediately",
		},
		Links: []Link{
			{Text: "Activate Card Online", URL: "https://www.ocbc.com/personal-banking/cards/activate-card"},
			{Text: "Card Features & Benefits", URL: "https://www.ocbc.com/personal-banking/cards"},
		},
	},
	{
		ID:          "apply-loan",
		Title:       "Apply for a Personal Loan",
		Description: "Apply for a personal loan with competitive interest rates. Get instant approval and flexible repayment options.",
		Category:    CategoryLoan,
		Steps: []string{
			"Check your eligibility using OCBC Loan Calculator",
			"Choose loan amount and tenure (1-5 years typically)",
			"Apply online via OCBC website or visit a branch",
			"Submit required documents: NRIC, income proof (CPF, payslip, tax assessment)",
			"Wait for approval (usually within 1-3 business days)",
			"Review loan terms and interest rates",
			"Sign loan agreement and receive funds",
		},
		ImportantNotes: []string{
			"Interest rates vary based on credit profile and loan amount",
			"Minimum income requirements apply (typically $30,000-$50,000 annually)",
			"Early repayment may incur fees - check terms",
			"Compare rates and terms before applying",
		},
		Links: []Link{
			{Text: "Apply for Loan", URL: "https://www.ocbc.com/personal-banking/loans/personal-loan"},
			{Text: "Loan Calculator", URL: "https://www.ocbc.com/personal-banking/loans/calculator"},
			{Text: "Loan Interest Rates", URL: "https://www.ocbc.com/personal-banking/loans/rates"},
		},
	},
	{
		ID:          "investment-account",
		Title:       "Open Investment Account",
		Description: "Start investing with OCBC. Open an investment account to trade stocks, bonds, and other investment products.",
		Category:    CategoryInvestment,
		Steps: []string{
			"Choose investment account type (Cash, Margin, or Custody account)",
			"Apply online or visit OCBC Securities branch",
			"Submit required documents: NRIC, proof of address, income proof",
			"Complete risk assessment questionnaire",
			"Fund your account with minimum initial deposit (typically $1,000)",
			"Account will be activated within 2-3 business days",
			"Start trading via OCBC Securities platform or mobile app",
		},
		ImportantNotes: []string{
			"Investment involves risk - read all terms and conditions",
			"Minimum deposit requirements vary by account type",
			"Trading fees and commissions apply",
			"Complete risk assessment is mandatory",
		},
		Links: []Link{
			{Text: "Open Investment Account", URL: "https://www.ocbc.com/personal-banking/investments"},
			{Text: "Investment Products", URL: "https://www.ocbc.com/personal-banking/investments/products"},
			{Text: "Trading Platform", URL: "https://www.ocbc.com/personal-banking/investments/trading"},
		},
	},
	{
		ID:          "update-profile",
		Title:       "Update Personal Information",
		Description: "Update your personal details like address, phone number, email, or employment information with OCBC.",
		Category:    CategoryAccount,
		Steps: []string{
			"Log in to OCBC Internet Banking or Mobile Banking",
			"Go to Profile or Settings section",
			"Select the information you want to update",
			"Enter new details and verify with OTP",
			"For address change: Upload proof of address document",
			"For phone/email: Verify with OTP sent to new number/email",
			"Submit changes for processing",
			"Changes take effect within 1-2 business days",
		},
		ImportantNotes: []string{
			"Keep your contact details updated for security alerts",
			"Address changes require proof of address document",
			"Some changes may require branch visit",
			"Update immediately if you change phone number",
		},
		Links: []Link{
			{Text: "Update Profile Online", URL: "https://www.ocbc.com/internet-banking/profile"},
			{Text: "Contact Us", URL: "https://www.ocbc.com/contact-us"},
		},
	},
	{
		ID:          "block-unblock-card",
		Title:       "Block or Unblock Card",
		Description: "Temporarily block your card if misplaced, then unblock it when found. Quick and easy card management.",
		Category:    CategoryCard,
		Steps: []string{
			"Log in to OCBC Mobile Banking app",
			"Go to Cards section",
			"Select the card you want to block/unblock",
			"Tap \"Block Card\" or \"Unblock Card\"",
			"Confirm action with OTP or biometric verification",
			"Card will be blocked/unblocked immediately",
			"You can unblock anytime if you find your card",
		},
		ImportantNotes: []string{
			"Blocking prevents new transactions but existing authorizations may still go through",
			"You can unblock your card anytime via mobile app",
			"If card is permanently lost, report it instead of just blocking",
			"Blocked cards cannot be used for any transactions",
		},
		Links: []Link{
			{Text: "Manage Cards", URL: "https://www.ocbc.com/mobile-banking/cards"},
			{Text: "Card Security", URL: "https://www.ocbc.com/personal-banking/cards/security"},
		},
	},
}

var selfServiceLinks = []SelfServiceLink{
	{
		ID:          "mobile-banking",
		Title:       "OCBC Mobile Banking",
		Description: "Bank on the go with our mobile app. Check balances, transfer funds, pay bills, and more.",
		URL:         "https://www.ocbc.com/mobile-banking",
		Category:    CategoryGeneral,
	},
	{
		ID:          "internet-banking",
		Title:       "Internet Banking",
		Description: "Access your accounts online 24/7. Full banking services from your computer.",
		URL:         "https://www.ocbc.com/internet-banking",
		Category:    CategoryAccount,
	},
	{
		ID:          "branch-locator",
		Title:       "Find a Branch",
		Description: "Locate nearest OCBC branch, ATM, or self-service kiosk. View hours and services.",
		URL:         "https://www.ocbc.com/branch-locator",
		Category:    CategoryGeneral,
	},
	{
		ID:          "card-services",
		Title:       "Card Services",
		Description: "Manage your credit and debit cards. Activate, block, view statements, and more.",
		URL:         "https://www.ocbc.com/personal-banking/cards",
		Category:    CategoryCard,
	},
	{
		ID:          "loan-calculator",
		Title:       "Loan Calculator",
		Description: "Calculate your loan eligibility, monthly payments, and interest rates instantly.",
		URL:         "https://www.ocbc.com/personal-banking/loans/calculator",
		Category:    CategoryLoan,
	},
	{
		ID:          "investment-platform",
		Title:       "Investment Platform",
		Description: "Trade stocks, bonds, and other investment products. Real-time market data and analysis.",
		URL:         "https://www.ocbc.com/personal-banking/investments",
		Category:    CategoryInvestment,
	},
	{
		ID:          "insurance-products",
		Title:       "Insurance Products",
		Description: "Protect what matters. Life, health, travel, and home insurance options.",
		URL:         "https://www.ocbc.com/personal-banking/insurance",
		Category:    CategoryInsurance,
	},
	{
		ID:          "contact-us",
		Title:       "Contact Us",
		Description: "Get in touch with OCBC. 24/7 hotline, live chat, email support, and branch locations.",
		URL:         "https://www.ocbc.com/contact-us",
		Category:    CategoryGeneral,
	},
	{
		ID:          "faq",
		Title:       "Frequently Asked Questions",
		Description: "Find answers to common banking questions. Quick help and troubleshooting guides.",
		URL:         "https://www.ocbc.com/faq",
		Category:    CategoryGeneral,
	},
	{
		ID:          "security-tips",
		Title:       "Security Tips",
		Description: "Learn how to protect your accounts. Fraud prevention and online security best practices.",
		URL:         "https://www.ocbc.com/security",
		Category:    CategoryGeneral,
	},
}

// GuideByID returns the guide with the given id, or nil.
func GuideByID(id string) *Guide {
	for i := range guides {
		if guides[i].ID == id {
			return &guides[i]
		}
	}
	return nil
}

func linksByCategory(category Category) []SelfServiceLink {
	var out []SelfServiceLink
	for _, link := range selfServiceLinks {
		if link.Category == category {
			out = append(out, link)
		}
	}
	return out
}
