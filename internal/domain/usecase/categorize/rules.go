package categorize

import "github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"

// Rule maps a set of upper-case keywords to a category
type Rule struct {
	Category entity.Category `json:"category"`
	Keywords []string        `json:"keywords"`
}

// defaultRules is evaluated top to bottom; the first rule with a matching keyword wins.
// Several keywords (FOOD, GAS, HOTEL, TRAIN, BUS) appear in more than one rule and
// resolve to the earlier one.
var defaultRules = []Rule{
	{
		Category: entity.CategoryGroceries,
		Keywords: []string{
			"GROCERY", "SUPERMARKET", "FOOD", "VEGETABLE", "FRUIT", "MILK",
			"BREAD", "RICE", "DAL", "OIL", "SPICE", "KIRANA", "GENERAL STORE",
			"BIG BAZAAR", "RELIANCE FRESH", "DMART", "GROFERS", "BIGBASKET",
		},
	},
	{
		Category: entity.CategoryUtilities,
		Keywords: []string{
			"ELECTRICITY", "POWER", "GAS", "WATER", "INTERNET", "PHONE",
			"MOBILE", "BROADBAND", "WIFI", "UTILITY", "BILL", "PAYMENT",
			"BSNL", "AIRTEL", "JIO", "VODAFONE", "IDEA", "MTNL",
		},
	},
	{
		Category: entity.CategoryRent,
		Keywords: []string{
			"RENT", "HOUSE RENT", "ACCOMMODATION", "LEASE", "RENTAL",
		},
	},
	{
		Category: entity.CategoryEntertainment,
		Keywords: []string{
			"MOVIE", "CINEMA", "NETFLIX", "AMAZON PRIME", "HOTSTAR", "ENTERTAINMENT",
			"GAME", "GAMING", "PLAYSTATION", "XBOX", "NINTENDO", "BOOK", "MAGAZINE",
			"NEWSPAPER", "MUSIC", "SPOTIFY", "YOUTUBE", "STREAMING",
		},
	},
	{
		Category: entity.CategoryTransportation,
		Keywords: []string{
			"PETROL", "DIESEL", "FUEL", "GAS", "UBER", "OLA", "TAXI", "BUS",
			"TRAIN", "METRO", "PARKING", "TOLL", "TRANSPORT", "CAB", "AUTO",
			"PETROL PUMP", "HP", "SHELL", "BP", "INDIAN OIL",
		},
	},
	{
		Category: entity.CategoryDining,
		Keywords: []string{
			"RESTAURANT", "CAFE", "FOOD", "MEAL", "LUNCH", "DINNER", "BREAKFAST",
			"SWIGGY", "ZOMATO", "FOODPANDA", "DOMINOS", "PIZZA HUT", "KFC",
			"MCDONALDS", "SUBWAY", "CAFETERIA", "CANTEEN", "HOTEL", "BAR", "PUB",
		},
	},
	{
		Category: entity.CategoryShopping,
		Keywords: []string{
			"AMAZON", "FLIPKART", "MYNTRA", "SHOPPING", "PURCHASE", "MALL",
			"SHOP", "RETAIL", "CLOTHING", "FASHION", "SHOES", "ELECTRONICS",
			"APPLIANCES", "FURNITURE", "DECOR", "LIFESTYLE", "JABONG",
			"SNAPDEAL", "PAYTM MALL", "TATA CLIQ", "NYKAA", "LENSKART",
		},
	},
	{
		Category: entity.CategoryHealthcare,
		Keywords: []string{
			"HOSPITAL", "DOCTOR", "MEDICAL", "PHARMACY", "MEDICINE", "HEALTH",
			"CLINIC", "DENTAL", "SURGERY", "AMBULANCE", "APOLLO", "FORTIS",
			"MAX HOSPITAL", "MEDPLUS", "NETMEDS", "PRACTO", "HEALTHKART",
		},
	},
	{
		Category: entity.CategoryEducation,
		Keywords: []string{
			"SCHOOL", "COLLEGE", "UNIVERSITY", "EDUCATION", "TUITION", "FEES",
			"COURSE", "TRAINING", "BOOKS", "LIBRARY", "EXAM", "BYJU",
			"UNACADEMY", "VEDANTU", "STUDENT", "ACADEMIC",
		},
	},
	{
		Category: entity.CategoryInsurance,
		Keywords: []string{
			"INSURANCE", "POLICY", "PREMIUM", "LIC", "HDFC LIFE", "ICICI PRU",
			"SBI LIFE", "BAJAJ ALLIANZ", "TATA AIG", "RELIANCE GENERAL",
			"HEALTH INSURANCE", "MOTOR INSURANCE", "TERM INSURANCE",
		},
	},
	{
		Category: entity.CategoryInvestment,
		Keywords: []string{
			"MUTUAL FUND", "SIP", "INVESTMENT", "TRADING", "ZERODHA", "GROWW",
			"ANGEL BROKING", "UPSTOX", "PAYTM MONEY", "KUVERA", "STOCK",
			"EQUITY", "BOND", "FD", "RD", "PPF", "ELSS", "NSE", "BSE",
		},
	},
	{
		Category: entity.CategoryTravel,
		Keywords: []string{
			"IRCTC", "MAKEMYTRIP", "GOIBIBO", "CLEARTRIP", "YATRA", "TRAVEL",
			"BOOKING", "HOTEL", "FLIGHT", "TRAIN", "BUS", "TICKET", "VACATION",
			"HOLIDAY", "TOURISM", "AIRBNB", "OYO", "TREEBO", "REDBUS",
		},
	},
	{
		Category: entity.CategoryPersonalCare,
		Keywords: []string{
			"SALON", "PARLOUR", "BEAUTY", "COSMETICS", "SKINCARE", "HAIRCUT",
			"MASSAGE", "SPA", "WELLNESS", "FITNESS", "GYM", "YOGA",
			"PERSONAL CARE", "GROOMING", "URBAN COMPANY", "LAKME",
		},
	},
	{
		Category: entity.CategoryHomeGarden,
		Keywords: []string{
			"HOME DEPOT", "GARDEN", "PLANTS", "NURSERY", "HARDWARE", "TOOLS",
			"REPAIR", "MAINTENANCE", "PLUMBER", "ELECTRICIAN", "CARPENTER",
			"PAINT", "TILES", "CEMENT", "CONSTRUCTION", "RENOVATION",
		},
	},
}
