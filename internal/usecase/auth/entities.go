package auth

import "zoo-procure-hub/internal/domain/user"

type RegisterInput struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Name       string    `json:"name"`
	Role       user.Role `json:"role"`
	Zoo        string    `json:"zoo"`
	Company    string    `json:"company"`
	Speciality string    `json:"speciality"`
	Contact    string    `json:"contact"`
	Address    string    `json:"address"`
}

type ProfileInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Zoo     *string `json:"zoo"`
	Company *string `json:"company"`
}

// UserUpdateInput is the admin edit; a new password is re-hashed.
type UserUpdateInput struct {
	Username   *string    `json:"username"`
	Email      *string    `json:"email"`
	Password   *string    `json:"password"`
	Name       *string    `json:"name"`
	Role       *user.Role `json:"role"`
	Speciality *string    `json:"speciality"`
	Rating     *float64   `json:"rating"`
	IsActive   *bool      `json:"isActive"`
}

type Session struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}
