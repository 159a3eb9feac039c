package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default returns the compiled-in menu of the house.
func Default() *Catalog {
	return New(defaultPizzas, defaultBeverages)
}

var defaultPizzas = []MenuEntry{
	{Name: "Margherita", Category: CategoryClassic, Ingredients: "Pomodoro DOP, Mozzarella fior di latte, Basilico fresco", Price: price("6.50"), Emoji: "🍅"},
	{Name: "Marinara", Category: CategoryClassic, Ingredients: "Pomodoro, Aglio, Origano, Olio EVO", Price: price("5.00"), Emoji: "🌬️"},
	{Name: "Diavola", Category: CategorySpecial, Ingredients: "Pomodoro, Mozzarella, Salame piccante, Pepe", Price: price("8.50"), Emoji: "🌶️"},
	{Name: "Quattro Formaggi", Category: CategorySpecial, Ingredients: "Mozzarella, Gorgonzola, Parmigiano, Provola", Price: price("9.50"), Emoji: "🧀"},
	{Name: "Capricciosa", Category: CategorySpecial, Ingredients: "Pomodoro, Mozzarella, Prosciutto, Funghi, Carciofi, Olive", Price: price("9.00"), Emoji: "🎨"},
	{Name: "Prosciutto e Funghi", Category: CategoryClassic, Ingredients: "Pomodoro, Mozzarella, Prosciutto crudo, Funghi porcini", Price: price("9.50"), Emoji: "🍄"},
	{Name: "Bufalina", Category: CategorySpecial, Ingredients: "Mozzarella di bufala, Pomodoro fresco, Basilico", Price: price("10.00"), Emoji: "🐃"},
	{Name: "Ortolana", Category: CategorySpecial, Ingredients: "Verdure grigliate, Mozzarella, Basilico, Pomodoro", Price: price("8.50"), Emoji: "🥦"},
	{Name: "Tonno e Cipolla", Category: CategorySpecial, Ingredients: "Pomodoro, Mozzarella, Tonno, Cipolla rossa", Price: price("8.00"), Emoji: "🐟"},
	{Name: "Frutti di Mare", Category: CategorySpecial, Ingredients: "Pomodoro, Mozzarella, Gamberi, Calamari, Cozze", Price: price("11.00"), Emoji: "🦐"},
	{Name: "Napoli", Category: CategoryClassic, Ingredients: "Pomodoro, Mozzarella, Acciughe, Capperi", Price: price("7.50"), Emoji: "🌊"},
	{Name: "Siciliana", Category: CategorySpecial, Ingredients: "Pomodoro, Ricotta salata, Melanzane, Basilico", Price: price("9.00"), Emoji: "🍆"},
}

var defaultBeverages = []BeverageSection{
	{Key: SectionSoftDrinks, Entries: []BeverageEntry{
		{Name: "Acqua naturale 0.5L", Price: price("2.00")},
		{Name: "Acqua frizzante 0.5L", Price: price("2.00")},
		{Name: "Coca-Cola 33cl", Price: price("3.00")},
		{Name: "Aranciata 33cl", Price: price("3.00")},
	}},
	{Key: SectionBeers, Entries: []BeverageEntry{
		{Name: "Birra bionda 33cl", Price: price("4.00")},
		{Name: "Birra artigianale 50cl", Price: price("5.50")},
		{Name: "Birra alla spina 40cl", Price: price("4.50")},
	}},
	{Key: SectionWines, Entries: []BeverageEntry{
		{Name: "Vino rosso della casa (bicchiere)", Price: price("4.00")},
		{Name: "Vino bianco della casa (bicchiere)", Price: price("4.00")},
		{Name: "Chianti Classico DOC (bottiglia)", Price: price("18.00")},
		{Name: "Prosecco DOC (bottiglia)", Price: price("20.00")},
	}},
}
