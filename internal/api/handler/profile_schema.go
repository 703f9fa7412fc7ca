package handler

import "time"

// upsertProfileRequest is the body of POST /api/profile. Status and skills
// are mandatory; everything else is an optional overlay. Fields omitted
// here leave the stored values untouched.
type upsertProfileRequest struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// experienceRequest is the body of PUT /api/profile/experience.
type experienceRequest struct {
	Title       string    `json:"title"   validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Location    string    `json:"location"`
	From        time.Time `json:"from"    validate:"required"`
	To          time.Time `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

// educationRequest is the body of PUT /api/profile/education.
type educationRequest struct {
	School       string    `json:"school"         validate:"required"`
	Degree       string    `json:"degree"         validate:"required"`
	FieldOfStudy string    `json:"field_of_study" validate:"required"`
	From         time.Time `json:"from"           validate:"required"`
	To           time.Time `json:"to"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
}
