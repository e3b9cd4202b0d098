package banking

import "strings"

// Detection is the classifier output. Type is empty when no category
// matched; Links always carries at least the general fallback entries.
type Detection struct {
	Type  string            `json:"type,omitempty"`
	Guide *Guide            `json:"guide,omitempty"`
	Links []SelfServiceLink `json:"links"`
}

type keywordGroup struct {
	queryType string
	guideID   string
	category  Category
	keywords  []string
}

// Groups run in this exact order. They are not mutually exclusive: a later
// matching group overwrites Type and Guide from an earlier one, while
// links accumulate across all matches. Tests pin this precedence; do not
// reorder without revisiting them.
var keywordGroups = []keywordGroup{
	{
		queryType: "lost-card",
		guideID:   "lost-card",
		category:  CategoryCard,
		keywords:  []string{"lost card", "stolen card", "card missing", "report card"},
	},
	{
		queryType: "balance",
		guideID:   "check-balance",
		category:  CategoryAccount,
		keywords:  []string{"balance", "check balance", "account balance", "how much"},
	},
	{
		queryType: "open-account",
		guideID:   "open-account",
		category:  CategoryAccount,
		keywords:  []string{"open account", "new account", "create account", "account opening"},
	},
	{
		queryType: "transfer",
		guideID:   "transfer-money",
		category:  CategoryTransfer,
		keywords:  []string{"transfer", "send money", "pay", "remit"},
	},
	{
		queryType: "password",
		guideID:   "forgot-password",
		category:  CategoryAccount,
		keywords:  []string{"forgot password", "reset password", "change password"},
	},
	{
		queryType: "card-activation",
		guideID:   "card-activation",
		category:  CategoryCard,
		keywords:  []string{"activate card", "new card", "card activation"},
	},
	{
		queryType: "apply-loan",
		guideID:   "apply-loan",
		category:  CategoryLoan,
		keywords:  []string{"apply loan", "personal loan", "loan application", "need loan", "borrow money"},
	},
	{
		queryType: "investment-account",
		guideID:   "investment-account",
		category:  CategoryInvestment,
		keywords:  []string{"investment", "invest", "trading account", "stocks", "open investment"},
	},
	{
		queryType: "update-profile",
		guideID:   "update-profile",
		category:  CategoryAccount,
		keywords:  []string{"update profile", "change address", "change phone", "update information", "change details"},
	},
	{
		queryType: "block-unblock-card",
		guideID:   "block-unblock-card",
		category:  CategoryCard,
		keywords:  []string{"block card", "unblock card", "freeze card", "temporarily block"},
	},
}

// Detect classifies a customer message into a banking query type and
// gathers the matching guide and self-service links.
func Detect(message string) Detection {
	lower := strings.ToLower(message)

	var detection Detection
	for _, group := range keywordGroups {
		if !matchesAny(lower, group.keywords) {
			continue
		}
		detection.Type = group.queryType
		detection.Guide = GuideByID(group.guideID)
		detection.Links = append(detection.Links, linksByCategory(group.category)...)
	}

	if len(detection.Links) == 0 {
		detection.Links = append(detection.Links, selfServiceLinks[:3]...)
	}
	return detection
}

func matchesAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
