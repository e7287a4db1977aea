package category

import "github.com/mhulst/bonscan/constants"

// keywordLists maps each category to the free-text words that signal it.
// Dutch first, English where users mix languages in titles.
var keywordLists = map[constants.Category][]string{
	constants.Food: {
		"boodschappen", "supermarkt", "eten", "lunch", "diner", "ontbijt",
		"restaurant", "cafe", "koffie", "brood", "bakker", "slager", "pizza",
		"sushi", "snack", "borrel", "groente", "fruit", "drinken", "bier",
		"groceries", "dinner", "coffee", "takeaway", "bezorging",
	},
	constants.Transport: {
		"benzine", "tanken", "brandstof", "diesel", "ov", "trein", "bus",
		"tram", "metro", "parkeren", "parkeergarage", "taxi", "fiets",
		"fuel", "petrol", "parking", "train", "ticket",
	},
	constants.Shopping: {
		"kleding", "schoenen", "cadeau", "kado", "elektronica", "boeken",
		"speelgoed", "meubels", "clothes", "shoes", "gift", "webshop",
	},
	constants.Health: {
		"apotheek", "drogist", "medicijnen", "tandarts", "fysio", "huisarts",
		"zorg", "bril", "lenzen", "pharmacy", "dentist", "vitamines",
	},
	constants.Leisure: {
		"bioscoop", "film", "concert", "museum", "pretpark", "zwembad",
		"sport", "sportschool", "fitness", "voetbal", "cinema", "festival",
		"uitje", "theater",
	},
	constants.Housing: {
		"huur", "hypotheek", "klussen", "verf", "gereedschap", "tuin",
		"bouwmarkt", "rent", "mortgage", "furniture", "lamp",
	},
	constants.Utilities: {
		"energie", "stroom", "gas", "water", "internet", "telefoon",
		"verzekering", "gemeente", "belasting", "electricity", "insurance",
	},
	constants.Travel: {
		"vakantie", "hotel", "vlucht", "vliegtuig", "camping", "airbnb",
		"reis", "holiday", "flight", "booking",
	},
	constants.Subscriptions: {
		"abonnement", "netflix", "spotify", "streaming", "krant",
		"tijdschrift", "subscription", "lidmaatschap", "contributie",
	},
}
