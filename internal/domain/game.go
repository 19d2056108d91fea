package domain

// Collection names.
const (
	GamesCollection = "games"
	UsersCollection = "users"
)

// Game is a board game in the catalogue. Fields without a type rule keep
// whatever JSON value the client sent ("60-90 min" and 90 are both a valid
// playTime).
type Game struct {
	ID            string  `json:"_id,omitempty"  bson:"_id,omitempty"`
	Title         string  `json:"title"          bson:"title"`
	Description   string  `json:"description"    bson:"description"`
	MinPlayers    int     `json:"minPlayers"     bson:"minPlayers"`
	MaxPlayers    int     `json:"maxPlayers"     bson:"maxPlayers"`
	PlayTime      any     `json:"playTime"       bson:"playTime"`
	AgeRange      any     `json:"ageRange"       bson:"ageRange"`
	Difficulty    any     `json:"difficulty"     bson:"difficulty"`
	Publisher     any     `json:"publisher"      bson:"publisher"`
	YearPublished any     `json:"yearPublished"  bson:"yearPublished"`
	Category      any     `json:"category"       bson:"category"`
	Price         float64 `json:"price"          bson:"price"`
}

// GameKind describes how games are validated and stored.
var GameKind = Kind{
	Name:       "game",
	Plural:     "games",
	Collection: GamesCollection,
	RequiredFields: []string{
		"title",
		"description",
		"minPlayers",
		"maxPlayers",
		"playTime",
		"ageRange",
		"difficulty",
		"publisher",
		"yearPublished",
		"category",
		"price",
	},
	Rules: []FieldRule{
		{
			Field:   "minPlayers",
			Type:    TypeNumber,
			Tag:     "gt=0",
			Message: "minPlayers must be a number greater than 0",
		},
		{
			Field:     "maxPlayers",
			Type:      TypeNumber,
			Tag:       "gtefield",
			CompareTo: "minPlayers",
			Message:   "maxPlayers must be a number greater than or equal to minPlayers",
		},
		{
			Field:   "price",
			Type:    TypeNumber,
			Tag:     "gte=0",
			Message: "price must be a number greater than or equal to 0",
		},
	},
}
