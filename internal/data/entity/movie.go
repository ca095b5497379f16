package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is one persisted record. The ID is assigned by MongoDB on insert
// and never changes; Image and ContentType are always written together.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"movie_name"`
	Rating      float64            `bson:"movie_rating"`
	Description string             `bson:"description"`
	Image       []byte             `bson:"image"`
	ContentType string             `bson:"contentType"`
}

// MovieUpdate carries the fields of a partial update. Nil pointers mean
// "leave untouched"; a non-empty Image always comes with its ContentType.
type MovieUpdate struct {
	Name        *string
	Rating      *float64
	Description *string
	Image       []byte
	ContentType string
}

func (u *MovieUpdate) IsEmpty() bool {
	return u.Name == nil && u.Rating == nil && u.Description == nil && len(u.Image) == 0
}
