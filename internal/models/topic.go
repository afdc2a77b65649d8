// Package models defines the domain types for the Bullhorn pipeline.
package models

// Topic is the listing metadata for one newsletter edition.
type Topic struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Views     int    `json:"views"`
	LikeCount int    `json:"like_count"`
}

// Mention is one contributor reference found on one line of a topic's raw
// body: a markdown link to a matrix.to identity on a line that also names a
// contribution keyword.
type Mention struct {
	PostID     int    `json:"post_id"`
	Title      string `json:"title"`
	User       string `json:"user"`
	MatrixLink string `json:"matrix_link"`
}

// UserCount is the number of distinct contributors mentioned in one topic.
type UserCount struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Users int    `json:"number_of_users"`
}

// UserTotal is the number of mentions of one contributor across all topics.
type UserTotal struct {
	User          string `json:"user"`
	Contributions int    `json:"contributions"`
}
