package domain

// Product is a shop catalog entry.
type Product struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Price    float64  `json:"price" bson:"price"`
	Features []string `json:"features" bson:"features"`
	Featured bool     `json:"featured" bson:"featured"`
}

// DefaultProducts is the catalog seeded on an empty store. Ids are assigned
// by the seeder.
func DefaultProducts() []Product {
	return []Product{
		{Name: "VIP Bronze", Price: 4.99, Features: []string{"Prefix dedicato", "Kit giornaliero", "Queue prioritaria"}},
		{Name: "VIP Silver", Price: 9.99, Features: []string{"Tutto di Bronze", "Particles esclusive", "/hat e /nick"}},
		{Name: "VIP Gold", Price: 14.99, Features: []string{"Tutto di Silver", "Kit potenziato Lifesteal", "Slot riservato"}, Featured: true},
		{Name: "VIP Legend", Price: 24.99, Features: []string{"Tutto di Gold", "Emote custom", "Ricompense evento +"}},
	}
}
