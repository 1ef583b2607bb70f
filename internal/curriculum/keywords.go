package curriculum

// SubjectKeywords lists, per subject, the terms that mark a free-text
// question as belonging to that subject. Matching is plain lowercase
// substring containment — no stemming, no tokenizing — so multi-word
// entries must appear contiguously in the input.
var SubjectKeywords = map[string][]string{
	"Mathematics": {
		"math", "fraction", "algebra", "geometry", "trigonometry", "calculus",
		"equation", "polynomial", "derivative", "integral", "matrix", "vector",
		"number", "digit", "divide", "multiply", "add", "subtract", "percent",
		"probability", "statistics", "mean", "median", "mode", "ratio", "proportion",
		"angle", "triangle", "quadrilateral", "circle", "perimeter", "area", "volume",
		"root", "exponent", "power", "variable", "constant", "integer",
		"decimal", "percentage", "compound interest", "profit", "loss", "discount",
		"hcf", "lcm", "pythagoras", "congruence", "construction", "mensuration",
	},

	"Science": {
		"science", "physics", "chemistry", "biology", "atom", "molecule",
		"element", "compound", "reaction", "force", "energy", "motion",
		"light", "electricity", "magnet", "cell", "organism", "evolution",
		"photosynthesis", "respiration", "digestion", "sound", "heat", "temperature",
		"pressure", "density", "gravity", "friction", "acceleration", "velocity",
		"metal", "nonmetal", "acid", "base", "salt", "oxide",
		"microorganism", "bacteria", "virus", "disease", "health", "nutrition",
		"ecosystem", "environment", "pollution", "climate", "weather", "water cycle",
		"fossil", "mineral", "rock", "soil", "atmosphere", "reflection", "refraction",
		"magnetic field", "electric current", "circuit", "conductor", "insulator",
		"skeleton", "muscle", "nerve", "blood", "heart", "lung", "brain",
	},

	"English": {
		"english", "grammar", "literature", "essay", "poem", "novel",
		"story", "noun", "verb", "adjective", "pronoun", "tense",
		"comprehension", "vocabulary", "writing", "reading", "punctuation",
		"sentence", "paragraph", "dialogue", "speech", "article", "preposition",
		"adverb", "conjunction", "present tense", "past tense",
		"future tense", "active voice", "passive voice", "subject", "predicate",
		"rhyme", "stanza", "verse", "prose", "character", "plot", "theme",
	},

	"Marathi": {
		"marathi", "marathi essay", "marathi grammar", "marathi literature",
		"marathi poem", "marathi story", "marathi language", "marathi writing",
		"marathi composition", "marathi translation", "marathi dictionary",
	},

	"Hindi": {
		"hindi", "hindi grammar", "hindi essay", "hindi literature",
		"hindi poem", "hindi story", "hindi language", "hindi writing",
		"hindi composition", "hindi translation", "hindi vocabulary",
	},

	"History": {
		"history", "ancient", "medieval", "modern", "empire", "kingdom",
		"war", "battle", "ruler", "king", "emperor", "dynasty",
		"civilization", "era", "period", "monument", "artifact", "colonial",
		"independence", "freedom struggle", "mughal", "british", "british india",
		"independence movement", "mahatma gandhi", "constitution", "parliament",
		"government", "rights", "duties", "citizenship", "1857 revolt",
		"non-cooperation movement", "civil disobedience", "revolutionary",
	},

	"Geography": {
		"geography", "map", "location", "country", "city", "continent",
		"climate", "weather", "mountain", "river", "ocean", "terrain",
		"population", "culture", "latitude", "longitude", "coordinates",
		"landform", "plateau", "valley", "coast", "desert", "forest",
		"agriculture", "industry", "trade", "settlement", "natural resources",
		"ecosystem", "environment", "soil", "rock", "mineral", "fossil",
		"weather systems", "clouds", "humidity", "temperature", "wind",
		"ocean current", "tide", "season", "climate zone", "biome",
	},

	"Social Studies": {
		"history", "geography", "civics", "government", "constitution",
		"law", "rights", "duties", "citizenship", "parliament", "democracy",
		"monarchy", "republic", "president", "minister", "lok sabha",
		"rajya sabha", "election", "voting", "amendment", "article", "schedule",
	},

	"Computer Science": {
		"computer", "programming", "python", "java", "code", "algorithm",
		"data structure", "database", "network", "software", "hardware",
		"binary", "logic", "function", "variable", "loop", "array",
		"coding", "debug", "compiler", "system", "application", "internet",
		"web", "server", "client", "protocol", "security", "password",
	},

	"Physical Education": {
		"physical education", "sports", "exercise", "fitness", "yoga",
		"health", "nutrition", "diet", "skill", "agility", "strength",
		"game", "athletics", "stretching", "running", "jumping",
		"flexibility", "endurance", "coordination",
	},

	"Art Education": {
		"art", "drawing", "painting", "sculpture", "craft", "design",
		"color", "sketch", "canvas", "brushwork", "perspective", "shading",
		"composition", "medium", "technique", "visual", "creative", "expression",
	},
}

// AllKeywords returns the union of every subject keyword list. Used as the
// maximally permissive allow-list when no board/grade context is available.
func AllKeywords() []string {
	var out []string
	for _, list := range SubjectKeywords {
		out = append(out, list...)
	}
	return out
}
