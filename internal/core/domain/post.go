package domain

import "time"

// Reply is appended to a post and never edited or removed on its own.
type Reply struct {
	Content string    `json:"content" bson:"content"`
	Author  string    `json:"author" bson:"author"`
	Date    time.Time `json:"date" bson:"date"`
}

// Post is a forum thread.
type Post struct {
	ID      string    `json:"id" bson:"id"`
	Title   string    `json:"title" bson:"title"`
	Content string    `json:"content" bson:"content"`
	Author  string    `json:"author" bson:"author"`
	Date    time.Time `json:"date" bson:"date"`
	Replies []Reply   `json:"replies" bson:"replies"`
}
