package users

import "errors"

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrFullnameRequired = errors.New("Full name is required and must be a non-empty string")
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrInvalidPassword  = errors.New("Invalid password format")
	ErrEmailTaken       = errors.New("Email already registered")
	ErrInvalidRole      = errors.New("Invalid role")
	ErrOwnRole          = errors.New("Users cannot modify their own role")
	ErrLastAdmin        = errors.New("Company must have at least one admin")
	ErrSelfRemoval      = errors.New("Users cannot remove themselves")
	ErrDifferentCompany = errors.New("Cannot modify users outside your company")
)
