package domain

import "time"

// Owner is the slice of User data denormalized onto profile reads.
type Owner struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Social holds optional links to external networks.
type Social struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// Experience is an embedded work-history entry, addressable by its own id.
type Experience struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Company     string    `json:"company" bson:"company"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time `json:"from" bson:"from"`
	To          time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool      `json:"current" bson:"current"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is an embedded study-history entry, addressable by its own id.
type Education struct {
	ID           string    `json:"id" bson:"_id"`
	School       string    `json:"school" bson:"school"`
	Degree       string    `json:"degree" bson:"degree"`
	FieldOfStudy string    `json:"field_of_study" bson:"field_of_study"`
	From         time.Time `json:"from" bson:"from"`
	To           time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool      `json:"current" bson:"current"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Profile is the career-related aggregate owned by exactly one User.
// Experience and education are kept newest-first.
type Profile struct {
	ID             string       `json:"id"`
	Owner          Owner        `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"github_username,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         *Social      `json:"social,omitempty"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// GithubRepo is a public repository summary fetched for a profile's
// github_username.
type GithubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}
