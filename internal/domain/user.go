package domain

import "time"

// User is a registered player profile. Name fields are stored as sent.
type User struct {
	ID                     string     `json:"_id,omitempty"           bson:"_id,omitempty"`
	Username               any        `json:"username"                bson:"username"`
	Email                  string     `json:"email"                   bson:"email"`
	FirstName              any        `json:"firstName"               bson:"firstName"`
	LastName               any        `json:"lastName"                bson:"lastName"`
	FavoriteGameCategories []string   `json:"favoriteGameCategories"  bson:"favoriteGameCategories"`
	OwnedGamesCount        int        `json:"ownedGamesCount"         bson:"ownedGamesCount"`
	DateJoined             *time.Time `json:"dateJoined,omitempty"    bson:"dateJoined,omitempty"`
}

// StampJoined sets the creation timestamp. It is called once, on insert.
func (u *User) StampJoined(at time.Time) {
	joined := at.UTC()
	u.DateJoined = &joined
}

// UserKind describes how users are validated and stored.
var UserKind = Kind{
	Name:       "user",
	Plural:     "users",
	Collection: UsersCollection,
	RequiredFields: []string{
		"username",
		"email",
		"firstName",
		"lastName",
		"favoriteGameCategories",
		"ownedGamesCount",
	},
	Rules: []FieldRule{
		{
			Field:   "ownedGamesCount",
			Type:    TypeNumber,
			Tag:     "gte=0",
			Message: "ownedGamesCount must be a number greater than or equal to 0",
		},
		{
			Field:   "favoriteGameCategories",
			Type:    TypeList,
			Message: "favoriteGameCategories must be an array",
		},
		{
			Field:   "email",
			Type:    TypeString,
			Tag:     "loose_email",
			Message: "Invalid email format",
		},
	},
}
