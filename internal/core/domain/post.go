package domain

import "time"

// Like records a single user's like on a post. One like per user.
type Like struct {
	UserID string `json:"user" bson:"user"`
}

// Comment is an embedded post comment, addressable by its own id.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Name      string    `json:"name" bson:"name"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

// Post is a user-authored text post. Name and avatar are snapshotted from
// the author at creation time so posts survive account deletion displays.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Name      string    `json:"name" bson:"name"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Likes     []Like    `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

// LikedBy reports whether userID already likes the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
