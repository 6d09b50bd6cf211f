// Package category maps counterparty names to spending categories using a
// static, ordered keyword taxonomy.
package category

import "strings"

// Category names.
const (
	Food          = "Food"
	Transport     = "Transport"
	Shopping      = "Shopping"
	Bills         = "Bills"
	Entertainment = "Entertainment"
	Healthcare    = "Healthcare"
	Other         = "Other"
)

type taxonomyEntry struct {
	name     string
	keywords []string
}

// Evaluation order is fixed; the first category whose keyword set contains
// a substring of the normalized name wins.
var taxonomy = []taxonomyEntry{
	{
		name: Food,
		keywords: []string{
			"swiggy", "zomato", "dominos", "domino's", "pizza", "kfc", "mcdonald",
			"burger", "subway", "dunzo", "eatsure", "box8", "faasos", "behrouz",
			"biryani", "restaurant", "cafe", "coffee", "starbucks", "chai",
			"barbeque", "grocery", "bigbasket", "blinkit", "zepto", "grofers",
			"instamart", "milk", "bakery", "sweets", "food", "kitchen", "dhaba",
			"hotel saravana", "udupi", "haldiram",
		},
	},
	{
		name: Transport,
		keywords: []string{
			"uber", "ola", "rapido", "redbus", "irctc", "railway", "metro",
			"petrol", "fuel", "diesel", "hpcl", "bpcl", "indian oil", "indianoil",
			"shell", "fastag", "toll", "parking", "makemytrip", "goibibo",
			"cleartrip", "ixigo", "indigo", "spicejet", "air india", "vistara",
			"yatra", "travels", "cab", "taxi", "auto",
		},
	},
	{
		name: Shopping,
		keywords: []string{
			"amazon", "flipkart", "myntra", "ajio", "meesho", "nykaa", "snapdeal",
			"tatacliq", "tata cliq", "croma", "reliance digital", "vijay sales",
			"decathlon", "ikea", "pepperfry", "urban ladder", "shoppers stop",
			"lifestyle", "pantaloons", "westside", "zudio", "max fashion",
			"trends", "mall", "mart", "store", "shop", "retail", "bazaar",
			"lenskart", "boat", "firstcry",
		},
	},
	{
		name: Bills,
		keywords: []string{
			"electricity", "electric", "bescom", "mseb", "tneb", "kseb",
			"water bill", "gas", "indane", "bharatgas", "hp gas", "broadband",
			"airtel", "jio", "vodafone", " vi ", "bsnl", "tata play", "tatasky",
			"dth", "recharge", "postpaid", "prepaid", "bill", "lic", "insurance",
			"premium", "emi", "loan repay", "rent", "maintenance", "society",
			"municipal", "tax", "tuition", "school fee",
		},
	},
	{
		name: Entertainment,
		keywords: []string{
			"netflix", "hotstar", "disney", "prime video", "sonyliv", "zee5",
			"spotify", "gaana", "wynk", "youtube", "bookmyshow", "pvr", "inox",
			"cinepolis", "cinema", "movie", "game", "playstation", "xbox",
			"steam", "dream11", "mpl", "rummy", "event", "concert",
		},
	},
	{
		name: Healthcare,
		keywords: []string{
			"apollo", "pharmacy", "pharmeasy", "netmeds", "1mg", "medplus",
			"practo", "hospital", "clinic", "diagnostic", "lab", "dental",
			"doctor", "dr ", "medical", "medicine", "chemist", "fortis",
			"manipal", "max health", "cult.fit", "cultfit", "healthify",
		},
	},
}

// Categorize maps a counterparty name to a spending category. It is a pure
// lookup with no state; unknown names map to Other.
func Categorize(counterparty string) string {
	name := strings.ToLower(strings.TrimSpace(counterparty))
	if name == "" {
		return Other
	}

	// Pad so keywords with deliberate spaces (" vi ", "dr ") can match at
	// the edges of the name.
	padded := " " + name + " "

	for _, entry := range taxonomy {
		for _, kw := range entry.keywords {
			if strings.Contains(padded, kw) {
				return entry.name
			}
		}
	}
	return Other
}

// Names returns the taxonomy's category names in evaluation order,
// including the default.
func Names() []string {
	names := make([]string, 0, len(taxonomy)+1)
	for _, entry := range taxonomy {
		names = append(names, entry.name)
	}
	return append(names, Other)
}

// Keywords returns the keyword set for a category name, or nil for unknown
// categories and the default.
func Keywords(name string) []string {
	for _, entry := range taxonomy {
		if entry.name == name {
			return entry.keywords
		}
	}
	return nil
}
