package handler

// msgResponse is the envelope for auth, not-found and server errors.
type msgResponse struct {
	Msg string `json:"msg"`
}

// errorsResponse is the envelope for validation and conflict errors.
type errorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// registerRequest is the body of POST /api/users.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest is the body of POST /api/auth.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse carries the signed credential issued by registration and
// login. Both endpoints answer with this exact shape.
type tokenResponse struct {
	Token string `json:"token"`
}
