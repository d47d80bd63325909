package post

import "time"

// Author is the two-part author name stored with every post.
type Author struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Post is the persistent blog-post document. The store assigns ID and
// Created at insert time; both are immutable afterwards.
type Post struct {
	ID      string    `json:"id" bson:"id"`
	Title   string    `json:"title" bson:"title"`
	Content string    `json:"content" bson:"content"`
	Author  Author    `json:"author" bson:"author"`
	Created time.Time `json:"created" bson:"created"`
}

// Shaped is the public response representation of a post. It differs from
// the stored document in one way: the author collapses to a single
// "<firstName> <lastName>" display string.
type Shaped struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// Shape converts the stored document into its public representation.
func (p *Post) Shape() Shaped {
	return Shaped{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.FirstName + " " + p.Author.LastName,
		Created: p.Created,
	}
}
