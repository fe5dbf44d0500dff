package domain

import "foodrun/model"

// Account is a user row together with its credentials.
type Account struct {
	model.User
	PasswordHash string
	Disabled     bool
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type ProfilePicture struct {
	URL string `json:"url"`
}

type AuthErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
