package model

import "time"

type UserType string

const (
	UserTypeWorker   UserType = "worker"
	UserTypeCustomer UserType = "customer"
)

// User represents an account on the marketplace
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"` // Do not expose password hash in JSON responses
	UserType       UserType  `json:"userType"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InsertUser is the registration payload
type InsertUser struct {
	Username       string   `json:"username" validate:"required"`
	Password       string   `json:"password" validate:"required,min=6"`
	UserType       UserType `json:"userType" validate:"required,oneof=worker customer"`
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	ProfilePicture *string  `json:"profilePicture"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
