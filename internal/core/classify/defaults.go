package classify

// Default is the category table the service ships with
var Default = NewTable(
	Category{Name: "technical", Keywords: []string{
		"code", "programming", "algorithm", "database", "api",
		"framework", "bug", "debug", "software", "development",
	}},
	Category{Name: "personal", Keywords: []string{
		"family", "friend", "relationship", "love", "life",
		"experience", "story", "home", "personal",
	}},
	Category{Name: "business", Keywords: []string{
		"company", "startup", "market", "investment", "strategy",
		"profit", "growth", "business", "corporate",
	}},
	Category{Name: "news", Keywords: []string{
		"politics", "election", "government", "policy", "economy",
		"world", "breaking", "news", "current",
	}},
	Category{Name: "entertainment", Keywords: []string{
		"movie", "music", "game", "celebrity", "show",
		"performance", "art", "entertainment", "fun",
	}},
)
