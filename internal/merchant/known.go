package merchant

import "strings"

// knownMerchant pairs a canonical display name with the lowercase
// substrings that identify it in message bodies.
type knownMerchant struct {
	canonical string
	aliases   []string
}

// Curated list spanning e-commerce, food delivery, transport, travel,
// subscriptions, utilities and fintech. Order matters: more specific names
// come before the brands they contain (Amazon Pay before Amazon).
var knownMerchants = []knownMerchant{
	// E-commerce
	{canonical: "Amazon Pay", aliases: []string{"amazon pay", "amazonpay", "amzn pay"}},
	{canonical: "Amazon Retail", aliases: []string{"amazon retail"}},
	{canonical: "Amazon Prime", aliases: []string{"amazon prime", "primevideo", "prime video"}},
	{canonical: "Amazon", aliases: []string{"amazon", "amzn"}},
	{canonical: "Flipkart", aliases: []string{"flipkart", "fkrt"}},
	{canonical: "Myntra", aliases: []string{"myntra"}},
	{canonical: "Ajio", aliases: []string{"ajio"}},
	{canonical: "Meesho", aliases: []string{"meesho"}},
	{canonical: "Nykaa", aliases: []string{"nykaa"}},
	{canonical: "Snapdeal", aliases: []string{"snapdeal"}},
	{canonical: "Tata Cliq", aliases: []string{"tatacliq", "tata cliq"}},
	{canonical: "Croma", aliases: []string{"croma"}},
	{canonical: "Reliance Digital", aliases: []string{"reliance digital"}},
	{canonical: "Decathlon", aliases: []string{"decathlon"}},
	{canonical: "Lenskart", aliases: []string{"lenskart"}},
	{canonical: "FirstCry", aliases: []string{"firstcry"}},
	{canonical: "Pepperfry", aliases: []string{"pepperfry"}},
	{canonical: "IKEA", aliases: []string{"ikea"}},

	// Food delivery and dining
	{canonical: "Swiggy Instamart", aliases: []string{"instamart"}},
	{canonical: "Swiggy", aliases: []string{"swiggy"}},
	{canonical: "Zomato", aliases: []string{"zomato"}},
	{canonical: "Domino's", aliases: []string{"dominos", "domino's"}},
	{canonical: "McDonald's", aliases: []string{"mcdonald", "mcdonalds"}},
	{canonical: "KFC", aliases: []string{"kfc"}},
	{canonical: "Burger King", aliases: []string{"burger king"}},
	{canonical: "Pizza Hut", aliases: []string{"pizza hut"}},
	{canonical: "Starbucks", aliases: []string{"starbucks"}},
	{canonical: "Cafe Coffee Day", aliases: []string{"cafe coffee day", "ccd"}},
	{canonical: "Haldiram's", aliases: []string{"haldiram"}},
	{canonical: "EatSure", aliases: []string{"eatsure"}},
	{canonical: "Box8", aliases: []string{"box8"}},
	{canonical: "Dunzo", aliases: []string{"dunzo"}},

	// Grocery
	{canonical: "BigBasket", aliases: []string{"bigbasket", "big basket"}},
	{canonical: "Blinkit", aliases: []string{"blinkit", "grofers"}},
	{canonical: "Zepto", aliases: []string{"zepto"}},
	{canonical: "DMart", aliases: []string{"dmart", "d-mart", "avenue supermarts"}},
	{canonical: "Reliance Fresh", aliases: []string{"reliance fresh"}},
	{canonical: "More Supermarket", aliases: []string{"more supermarket", "more retail"}},
	{canonical: "Spencer's", aliases: []string{"spencers", "spencer's"}},

	// Transport and travel
	{canonical: "Uber", aliases: []string{"uber"}},
	{canonical: "Ola", aliases: []string{"ola cabs", "olacabs", "ola money"}},
	{canonical: "Rapido", aliases: []string{"rapido"}},
	{canonical: "RedBus", aliases: []string{"redbus"}},
	{canonical: "IRCTC", aliases: []string{"irctc"}},
	{canonical: "MakeMyTrip", aliases: []string{"makemytrip", "mmt"}},
	{canonical: "Goibibo", aliases: []string{"goibibo"}},
	{canonical: "Cleartrip", aliases: []string{"cleartrip"}},
	{canonical: "Ixigo", aliases: []string{"ixigo"}},
	{canonical: "IndiGo", aliases: []string{"indigo", "interglobe"}},
	{canonical: "SpiceJet", aliases: []string{"spicejet"}},
	{canonical: "Air India", aliases: []string{"air india", "airindia"}},
	{canonical: "Vistara", aliases: []string{"vistara"}},
	{canonical: "OYO", aliases: []string{"oyo rooms", "oyorooms"}},
	{canonical: "Airbnb", aliases: []string{"airbnb"}},

	// Subscriptions and entertainment
	{canonical: "Netflix", aliases: []string{"netflix"}},
	{canonical: "Disney+ Hotstar", aliases: []string{"hotstar", "disney"}},
	{canonical: "Spotify", aliases: []string{"spotify"}},
	{canonical: "SonyLIV", aliases: []string{"sonyliv", "sony liv"}},
	{canonical: "ZEE5", aliases: []string{"zee5"}},
	{canonical: "YouTube Premium", aliases: []string{"youtube premium", "youtube"}},
	{canonical: "BookMyShow", aliases: []string{"bookmyshow", "bigtree"}},
	{canonical: "PVR", aliases: []string{"pvr cinemas", "pvr inox", "pvr"}},
	{canonical: "Google Play", aliases: []string{"google play", "googleplay"}},

	// Utilities and telecom
	{canonical: "Airtel", aliases: []string{"airtel", "bharti airtel"}},
	{canonical: "Jio", aliases: []string{"jio recharge", "reliance jio", "jio"}},
	{canonical: "Vi", aliases: []string{"vodafone idea", "vodafone", "vi recharge"}},
	{canonical: "BSNL", aliases: []string{"bsnl"}},
	{canonical: "Tata Play", aliases: []string{"tata play", "tatasky", "tata sky"}},
	{canonical: "BESCOM", aliases: []string{"bescom"}},
	{canonical: "Indane Gas", aliases: []string{"indane"}},

	// Fintech and payments
	{canonical: "Paytm", aliases: []string{"paytm"}},
	{canonical: "PhonePe", aliases: []string{"phonepe", "phone pe"}},
	{canonical: "Google Pay", aliases: []string{"google pay", "gpay"}},
	{canonical: "CRED", aliases: []string{"cred club", "cred.club"}},
	{canonical: "MobiKwik", aliases: []string{"mobikwik"}},
	{canonical: "FreeCharge", aliases: []string{"freecharge"}},
	{canonical: "Razorpay", aliases: []string{"razorpay", "razorupi", "rzp"}},
	{canonical: "LIC", aliases: []string{"lic of india", "lic premium"}},
	{canonical: "Zerodha", aliases: []string{"zerodha"}},
	{canonical: "Groww", aliases: []string{"groww"}},

	// Healthcare and fitness
	{canonical: "Apollo Pharmacy", aliases: []string{"apollo pharmacy", "apollo 24"}},
	{canonical: "PharmEasy", aliases: []string{"pharmeasy"}},
	{canonical: "Netmeds", aliases: []string{"netmeds"}},
	{canonical: "Tata 1mg", aliases: []string{"1mg"}},
	{canonical: "MedPlus", aliases: []string{"medplus"}},
	{canonical: "Cult.fit", aliases: []string{"cult.fit", "cultfit", "curefit"}},
}

// LookupKnown scans text for a curated merchant and returns its canonical
// name. Aliases are matched as lowercase substrings in list order.
func LookupKnown(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, m := range knownMerchants {
		for _, alias := range m.aliases {
			if strings.Contains(lower, alias) {
				return m.canonical, true
			}
		}
	}
	return "", false
}

// IsKnown reports whether text mentions any curated merchant.
func IsKnown(text string) bool {
	_, ok := LookupKnown(text)
	return ok
}
