package domain

import "time"

// Activity actions recorded by the async activity pipeline.
const (
	ActivityRegistered     = "registered"
	ActivityLoggedIn       = "logged_in"
	ActivityProfileUpdated = "profile_updated"
	ActivityPostCreated    = "post_created"
	ActivityAccountDeleted = "account_deleted"
)

// Activity is an append-only audit record of a user action.
type Activity struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user"`
	Action    string    `json:"action" bson:"action"`
	CreatedAt time.Time `json:"date" bson:"date"`
}
