package domain

import "time"

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	FirstName    string    `json:"first_name" dynamodbav:"first_name"`
	LastName     string    `json:"last_name" dynamodbav:"last_name"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Age          *int      `json:"age,omitempty" dynamodbav:"age,omitempty"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}

type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Age       *int   `json:"age"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserPage is one fixed-size page of the full user listing.
type UserPage struct {
	Total      int
	Page       int
	TotalPages int
	Users      []User
}
