package repos

import (
	"driveline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.UserRecord, error) {
	var u domain.UserRecord
	err := r.DB.Get(&u, `
	  SELECT id,email,name,password_hash,role,created
	  FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.UserRecord, error) {
	var u domain.UserRecord
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role,created FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepo) Create(rec domain.UserRecord) (domain.UserRecord, error) {
	res, err := r.DB.Exec(`
	  INSERT INTO users(email,name,password_hash,role) VALUES(?,?,?,?)`,
		rec.Email, rec.Name, rec.PasswordHash, rec.Role)
	if err != nil {
		return domain.UserRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.UserRecord{}, err
	}
	u, err := r.ByID(id)
	if err != nil {
		return domain.UserRecord{}, err
	}
	return *u, nil
}

// BindSession persists an opaque token for a user; the token is what login
// hands back to the client.
func (r *UserRepo) BindSession(token string, userID int64) error {
	_, err := r.DB.Exec(`
	  INSERT INTO sessions(token,user_id,last_seen)
	  VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(token) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`,
		token, userID)
	return err
}

func (r *UserRepo) SessionUser(token string) (*domain.UserRecord, error) {
	var u domain.UserRecord
	err := r.DB.Get(&u, `
	  SELECT u.id,u.email,u.name,u.password_hash,u.role,u.created
	  FROM sessions s
	  JOIN users u ON u.id = s.user_id
	  WHERE s.token = ?`, token)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
