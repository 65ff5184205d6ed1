package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogDocument is a post as stored by the backend in the `blogs` collection.
// The backend writes `_id` either as an ObjectID or as a plain string and
// `date` either as a BSON date or as an ISO string.
type BlogDocument struct {
	ID    any      `bson:"_id"`
	Title string   `bson:"title"`
	Text  string   `bson:"text"`
	Story string   `bson:"story"`
	Date  any      `bson:"date"`
	Files []string `bson:"files"`
	Tags  []string `bson:"tags"`
}

// ToPost converts the stored document into the canonical Post shape.
func (d BlogDocument) ToPost() (Post, error) {
	var id string
	switch v := d.ID.(type) {
	case primitive.ObjectID:
		id = v.Hex()
	case string:
		id = v
	case nil:
		return Post{}, fmt.Errorf("blog document %q has no _id", d.Title)
	default:
		id = fmt.Sprint(v)
	}

	var date string
	switch v := d.Date.(type) {
	case primitive.DateTime:
		date = v.Time().UTC().Format(time.RFC3339)
	case time.Time:
		date = v.UTC().Format(time.RFC3339)
	case string:
		date = v
	}

	files := d.Files
	if files == nil {
		files = []string{}
	}
	return Post{
		ID:    id,
		Title: d.Title,
		Text:  d.Text,
		Story: d.Story,
		Date:  date,
		Files: files,
		Tags:  d.Tags,
	}, nil
}
