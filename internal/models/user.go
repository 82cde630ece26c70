package models

import "driveline/internal/domain"

// User is the public credential shape. There is deliberately no password field
// here, so a UserRecord's hash cannot reach a response body.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func UserFromRecord(rec domain.UserRecord) User {
	return User{
		ID:    rec.ID,
		Email: rec.Email,
		Name:  rec.Name,
		Role:  rec.Role,
	}
}

// Category is derived at request time from distinct vehicle category names;
// its ID is positional (1-based, first-seen order) and not stable across
// inserts. Nothing persists it.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductCategory groups the vehicles sharing one category name.
type ProductCategory struct {
	CategoryName string    `json:"categoryName"`
	Products     []Vehicle `json:"products"`
}
