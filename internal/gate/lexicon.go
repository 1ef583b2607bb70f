package gate

// offTopicKeywords are phrases that mark a question as non-academic.
// Matching is lowercase substring containment; multi-word phrases must
// appear contiguously.
var offTopicKeywords = []string{
	// Movies/TV
	"movie", "movies", "film", "netflix", "disney", "marvel", "dc", "avengers",
	"stranger things", "squid game", "anime", "series", "episode", "season",
	"hollywood", "bollywood", "actor", "actress", "director",

	// Celebrities
	"celebrity", "celebrities", "virat", "kohli", "messi", "ronaldo", "shah rukh",
	"srk", "selena", "taylor swift", "bts", "blackpink", "influencer", "youtuber",
	"tiktoker", "instagram", "famous", "star",

	// Sports (non-academic)
	"cricket", "football", "soccer", "basketball", "ipl", "world cup", "match score",
	"live score", "tournament", "fifa", "nba", "nfl", "player stats", "team",
	"league", "premier league", "champions league",

	// Gaming
	"fortnite", "pubg", "minecraft", "valorant", "gta", "call of duty", "cod",
	"xbox", "playstation", "ps5", "nintendo", "gaming tips", "cheats", "walkthrough",
	"free fire", "roblox", "apex legends", "video game",

	// News/Trends
	"news", "trending", "viral", "meme", "memes", "gossip", "scandal", "politics",
	"election", "controversy", "rumor", "drama",

	// Food/Fashion (non-academic)
	"recipe", "cooking tips", "restaurant", "food review", "makeup", "fashion tips",
	"outfit", "style tips", "beauty tips", "skincare routine", "diet plan",

	// Music (non-academic)
	"song lyrics", "spotify", "concert", "music video", "album", "playlist",
	"latest song", "new release", "singer", "band",

	// Travel
	"travel tips", "hotel", "vacation", "tourist", "holiday destination",
	"flight booking", "best places to visit",

	// Social media
	"followers", "likes", "viral video", "tiktok", "reels", "shorts",

	// Dating/Relationships
	"dating", "crush", "relationship advice", "breakup", "love life",
}

// academicKeywords signal academic intent regardless of subject. A hit
// here overrides an off-topic match ("explain the physics behind a
// football kick" must not be rejected for "football").
var academicKeywords = []string{
	// Learning verbs
	"study", "learn", "understand", "explain", "teach", "clarify", "describe",
	"define", "solve", "calculate", "prove", "derive", "analyze", "compare",

	// Question stems
	"how do", "how does", "how to", "what is", "what are", "why do", "why does",
	"why is", "when do", "where do", "which", "can you explain", "help me",
	"i don't understand", "confused about", "stuck on",

	// Academic nouns
	"homework", "assignment", "exam", "test", "quiz", "question", "problem",
	"exercise", "chapter", "lesson", "topic", "concept", "theory", "formula",
	"equation", "theorem", "principle", "law", "rule", "definition",

	// Academic actions
	"doubt", "doubts", "practice", "revision", "notes", "summary", "example",
	"examples", "steps", "method", "solution", "answer", "hint", "tip",
}

// offTopicCategories maps specific matched keywords to a friendlier
// category name for the rejection message.
var offTopicCategories = map[string]string{
	// Movies/TV
	"movie":   "movies and entertainment",
	"netflix": "streaming shows",
	"marvel":  "superhero movies",
	"anime":   "anime and cartoons",

	// Sports
	"cricket":  "sports",
	"football": "sports",
	"ipl":      "sports tournaments",

	// Gaming
	"fortnite":  "video games",
	"pubg":      "video games",
	"minecraft": "video games",

	// Social
	"tiktok": "social media",
}

// greetings are short casual openers that should get a canned reply
// instead of reaching the tutor.
var greetings = []string{
	"hi", "hello", "hey", "hii", "hiii", "yo", "sup", "hola", "good morning",
}
