package domain

// User roles form a closed set; anything else is rejected at signup.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type UserRecord struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Created      string `db:"created"`
}
