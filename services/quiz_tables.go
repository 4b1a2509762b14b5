package services

import "valley-breezes/models"

var QuizQuestions = []models.QuizQuestion{
	{
		ID:       models.QuestionOccasion,
		Question: "When do you plan to wear this fragrance?",
		Options: []models.QuizOption{
			{Value: "daily", Label: "Daily Wear", Description: "For work, casual outings"},
			{Value: "evening", Label: "Evening Events", Description: "Dinner, parties, dates"},
			{Value: "special", Label: "Special Occasions", Description: "Weddings, celebrations"},
			{Value: "any", Label: "Any Time", Description: "Versatile for all occasions"},
		},
	},
	{
		ID:       models.QuestionSeason,
		Question: "Which season do you prefer this fragrance for?",
		Options: []models.QuizOption{
			{Value: "spring", Label: "Spring", Description: "Fresh, light, blooming"},
			{Value: "summer", Label: "Summer", Description: "Citrusy, aquatic, energizing"},
			{Value: "autumn", Label: "Autumn", Description: "Warm, spicy, cozy"},
			{Value: "winter", Label: "Winter", Description: "Rich, deep, comforting"},
		},
	},
	{
		ID:       models.QuestionPersonality,
		Question: "Which personality trait describes you best?",
		Options: []models.QuizOption{
			{Value: "romantic", Label: "Romantic", Description: "Dreamy, soft, feminine"},
			{Value: "confident", Label: "Confident", Description: "Bold, powerful, assertive"},
			{Value: "mysterious", Label: "Mysterious", Description: "Enigmatic, alluring, deep"},
			{Value: "energetic", Label: "Energetic", Description: "Vibrant, active, fresh"},
		},
	},
	{
		ID:       models.QuestionIntensity,
		Question: "How strong do you like your fragrance?",
		Options: []models.QuizOption{
			{Value: "subtle", Label: "Subtle", Description: "Light, barely there"},
			{Value: "moderate", Label: "Moderate", Description: "Noticeable but not overpowering"},
			{Value: "strong", Label: "Strong", Description: "Bold, makes a statement"},
			{Value: "intense", Label: "Very Intense", Description: "Long-lasting, powerful projection"},
		},
	},
	{
		ID:       models.QuestionOlfactoryFamily,
		Question: "Which scent family appeals to you most?",
		Options: []models.QuizOption{
			{Value: "floral", Label: "Floral", Description: "Rose, jasmine, lily - feminine and romantic"},
			{Value: "citrus", Label: "Citrus", Description: "Lemon, orange, bergamot - fresh and energizing"},
			{Value: "woody", Label: "Woody", Description: "Sandalwood, cedar, vetiver - warm and grounding"},
			{Value: "oriental", Label: "Oriental", Description: "Vanilla, amber, spices - rich and sensual"},
			{Value: "fresh", Label: "Fresh", Description: "Aquatic, green, ozonic - clean and crisp"},
			{Value: "gourmand", Label: "Gourmand", Description: "Vanilla, caramel, chocolate - sweet and edible"},
		},
	},
	{
		ID:       models.QuestionNotesPreference,
		Question: "What kind of fragrance notes do you prefer?",
		Options: []models.QuizOption{
			{Value: "fruity", Label: "Fruity", Description: "Apple, peach, berries - sweet and juicy"},
			{Value: "spicy", Label: "Spicy", Description: "Cinnamon, cardamom, pepper - warm and exotic"},
			{Value: "aromatic", Label: "Aromatic", Description: "Lavender, rosemary, mint - herbal and green"},
			{Value: "earthy", Label: "Earthy", Description: "Patchouli, moss, mushrooms - natural and grounding"},
			{Value: "smoky", Label: "Smoky", Description: "Oud, incense, tobacco - mysterious and intense"},
			{Value: "powdery", Label: "Powdery", Description: "Iris, musk, vanilla - soft and comforting"},
		},
	},
}

type recommendationEntry struct {
	ids       []string
	profile   string
	lifestyle string
}

func key(occasion, season, personality, intensity, family, notes string) models.QuizKey {
	return models.QuizKey{
		Occasion:        occasion,
		Season:          season,
		Personality:     personality,
		Intensity:       intensity,
		OlfactoryFamily: family,
		NotesPreference: notes,
	}
}

// Curated answer combinations. The earthy/earthy entry cannot be reached
// through the questionnaire (earthy is not a scent family option) but is kept
// so direct Resolve callers see the same table.
var curatedRecommendations = map[models.QuizKey]recommendationEntry{
	key("daily", "spring", "energetic", "subtle", "citrus", "fruity"):    {[]string{"3", "8"}, "Fresh & Citrus", "Active & Energetic"},
	key("daily", "summer", "energetic", "subtle", "citrus", "aromatic"):  {[]string{"3", "8"}, "Aquatic & Citrus", "Outdoor & Sporty"},
	key("any", "spring", "romantic", "moderate", "floral", "powdery"):    {[]string{"4", "7"}, "Floral & Feminine", "Romantic & Dreamy"},
	key("daily", "spring", "romantic", "subtle", "floral", "fruity"):     {[]string{"4", "7"}, "Soft Floral", "Graceful & Elegant"},
	key("evening", "autumn", "confident", "strong", "oriental", "spicy"): {[]string{"1", "2"}, "Warm & Spicy", "Sophisticated & Bold"},
	key("evening", "winter", "mysterious", "intense", "woody", "smoky"):  {[]string{"1", "5"}, "Woody & Mysterious", "Luxurious & Enigmatic"},
	key("special", "any", "confident", "strong", "oriental", "gourmand"): {[]string{"4", "7"}, "Rich & Opulent", "Celebratory & Prestigious"},
	key("special", "winter", "mysterious", "intense", "woody", "earthy"): {[]string{"1", "2"}, "Deep & Complex", "Exclusive & Refined"},
	key("any", "any", "confident", "moderate", "woody", "aromatic"):      {[]string{"3", "6"}, "Balanced & Versatile", "Modern & Adaptable"},
	key("daily", "any", "energetic", "moderate", "citrus", "fruity"):     {[]string{"3", "8"}, "Vibrant & Refreshing", "Youthful & Dynamic"},
	key("daily", "summer", "energetic", "subtle", "fresh", "aromatic"):   {[]string{"3", "8"}, "Clean & Aquatic", "Refreshing & Vital"},
	key("daily", "spring", "romantic", "subtle", "fresh", "powdery"):     {[]string{"4", "7"}, "Soft & Clean", "Pure & Serene"},
	key("daily", "autumn", "confident", "moderate", "earthy", "earthy"):  {[]string{"5", "6"}, "Natural & Grounding", "Earthy & Authentic"},
	key("daily", "winter", "mysterious", "strong", "woody", "earthy"):    {[]string{"1", "5"}, "Deep & Earthy", "Rooted & Stable"},
	key("special", "any", "confident", "intense", "oriental", "spicy"):   {[]string{"1", "2"}, "Rich & Exotic", "Luxurious & Passionate"},
}

// Per-dimension fallbacks, consulted in fallbackDimensions order.
var fallbackRecommendations = map[models.QuestionID]map[string]recommendationEntry{
	models.QuestionOlfactoryFamily: {
		"floral":   {[]string{"4", "7"}, "Floral & Feminine", "Romantic & Graceful"},
		"citrus":   {[]string{"3", "8"}, "Fresh & Citrus", "Energetic & Vibrant"},
		"woody":    {[]string{"5", "1"}, "Woody & Earthy", "Confident & Grounded"},
		"oriental": {[]string{"1", "2"}, "Warm & Spicy", "Sophisticated & Alluring"},
		"fresh":    {[]string{"3", "8"}, "Clean & Aquatic", "Refreshing & Pure"},
		"gourmand": {[]string{"4", "7"}, "Sweet & Edible", "Indulgent & Comforting"},
	},
	models.QuestionNotesPreference: {
		"fruity":   {[]string{"4", "7"}, "Fruity & Juicy", "Playful & Sweet"},
		"spicy":    {[]string{"1", "2"}, "Spicy & Warm", "Bold & Exotic"},
		"aromatic": {[]string{"3", "8"}, "Herbal & Green", "Fresh & Natural"},
		"earthy":   {[]string{"5", "6"}, "Earthy & Natural", "Grounded & Authentic"},
		"smoky":    {[]string{"1", "5"}, "Smoky & Mysterious", "Intense & Enigmatic"},
		"powdery":  {[]string{"4", "7"}, "Soft & Powdery", "Comforting & Delicate"},
	},
	models.QuestionPersonality: {
		"romantic":   {[]string{"4", "7"}, "Soft & Dreamy", "Romantic & Feminine"},
		"confident":  {[]string{"1", "2"}, "Bold & Assertive", "Powerful & Dynamic"},
		"mysterious": {[]string{"1", "5"}, "Enigmatic & Deep", "Intriguing & Complex"},
		"energetic":  {[]string{"3", "8"}, "Vibrant & Fresh", "Active & Lively"},
	},
	models.QuestionSeason: {
		"spring": {[]string{"4", "7"}, "Floral & Fresh", "Renewed & Blossoming"},
		"summer": {[]string{"3", "8"}, "Aquatic & Citrus", "Cool & Refreshing"},
		"autumn": {[]string{"1", "2"}, "Warm & Spicy", "Cozy & Comforting"},
		"winter": {[]string{"5", "6"}, "Rich & Deep", "Luxurious & Intense"},
	},
}

var fallbackDimensions = []models.QuestionID{
	models.QuestionOlfactoryFamily,
	models.QuestionNotesPreference,
	models.QuestionPersonality,
	models.QuestionSeason,
}

var defaultRecommendation = recommendationEntry{
	ids:       []string{"1", "3", "4"},
	profile:   "Well-Rounded Selection",
	lifestyle: "Versatile & Balanced",
}

// Descriptive texts shown on the results view.
var answerDescriptions = map[string]string{
	"daily":   "Daily Wear - For work and casual outings",
	"evening": "Evening Events - Perfect for dinner, parties, and dates",
	"special": "Special Occasions - Ideal for weddings and celebrations",
	"any":     "Any Time - Versatile for all occasions",

	"spring": "Spring - Fresh and light with blooming notes",
	"summer": "Summer - Citrusy and aquatic for energizing vibes",
	"autumn": "Autumn - Warm and spicy for cozy moments",
	"winter": "Winter - Rich and deep for comforting experiences",

	"romantic":   "Romantic - Dreamy, soft, and feminine",
	"confident":  "Confident - Bold, powerful, and assertive",
	"mysterious": "Mysterious - Enigmatic, alluring, and deep",
	"energetic":  "Energetic - Vibrant, active, and fresh",

	"subtle":   "Subtle - Light and barely there",
	"moderate": "Moderate - Noticeable but not overpowering",
	"strong":   "Strong - Bold and makes a statement",
	"intense":  "Very Intense - Long-lasting with powerful projection",

	"floral":   "Floral - Rose, jasmine, and lily notes",
	"citrus":   "Citrus - Lemon, orange, and bergamot notes",
	"woody":    "Woody - Sandalwood, cedar, and oak notes",
	"oriental": "Oriental - Vanilla, amber, and spices notes",
}
