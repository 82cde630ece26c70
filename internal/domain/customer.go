package domain

// CustomerRecord is the persisted customer row. Created and LastUpdated are
// server-assigned on write.
type CustomerRecord struct {
	ID          int64  `db:"id"`
	FirstName   string `db:"firstname"`
	MiddleName  string `db:"middlename"`
	LastName    string `db:"lastname"`
	DateOfBirth string `db:"date_of_birth"` // 2006-01-02
	Gender      string `db:"gender"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Address     string `db:"address"`
	Created     string `db:"created"`
	LastUpdated string `db:"last_updated"`
}
