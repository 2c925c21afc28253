package catalog

// Seed returns the built-in destination catalog.
//
// The real catalog lives behind the backend API; this seed keeps search and
// the demo session working offline.
func Seed() []Destination {
	return []Destination{
		{
			ID:      "tokyo",
			Name:    "Tokyo",
			Country: "Japan",
			Region:  "Kanto",
			Summary: "Neon skyline, tiny izakayas, and day trips to temples and Mount Fuji.",
			Tags:    []string{"city", "food", "culture"},
		},
		{
			ID:      "kyoto",
			Name:    "Kyoto",
			Country: "Japan",
			Region:  "Kansai",
			Summary: "Historic temples, bamboo groves, and traditional ryokan stays.",
			Tags:    []string{"culture", "temples", "history"},
		},
		{
			ID:      "osaka",
			Name:    "Osaka",
			Country: "Japan",
			Region:  "Kansai",
			Summary: "Street food capital with a famous castle and easy rail connections.",
			Tags:    []string{"food", "city"},
		},
		{
			ID:      "lisbon",
			Name:    "Lisbon",
			Country: "Portugal",
			Region:  "Estremadura",
			Summary: "Hillside tram rides, pastel facades, and Atlantic beaches nearby.",
			Tags:    []string{"city", "beach", "budget"},
		},
		{
			ID:      "reykjavik",
			Name:    "Reykjavik",
			Country: "Iceland",
			Region:  "Capital Region",
			Summary: "Gateway to glaciers, geysers, and northern lights tours.",
			Tags:    []string{"nature", "adventure"},
		},
		{
			ID:      "queenstown",
			Name:    "Queenstown",
			Country: "New Zealand",
			Region:  "Otago",
			Summary: "Adventure sports hub ringed by mountains and fjord cruises.",
			Tags:    []string{"adventure", "nature", "hiking"},
		},
		{
			ID:      "marrakech",
			Name:    "Marrakech",
			Country: "Morocco",
			Region:  "Marrakesh-Safi",
			Summary: "Souks, riads, and desert excursions from the medina.",
			Tags:    []string{"culture", "markets"},
		},
		{
			ID:      "cancun",
			Name:    "Cancun",
			Country: "Mexico",
			Region:  "Quintana Roo",
			Summary: "White sand beaches, cenote diving, and Mayan ruins within reach.",
			Tags:    []string{"beach", "resort", "diving"},
		},
	}
}
