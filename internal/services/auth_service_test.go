package services_test

import (
	"testing"

	"driveline/internal/repos"
	"driveline/internal/services"
)

func newAuth(t *testing.T) *services.AuthService {
	t.Helper()
	return services.NewAuthService(repos.NewUserRepo(memdb(t)))
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	auth := newAuth(t)
	users := auth.Users

	sess, err := auth.Signup("ada@example.com", "correct horse", "Ada", "")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Token == "" {
		t.Fatal("signup should open a session")
	}
	if sess.User.Role != "customer" {
		t.Fatalf("absent role should default to customer, got %q", sess.User.Role)
	}

	rec, err := users.ByEmail("ada@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if rec.PasswordHash == "correct horse" || rec.PasswordHash == "" {
		t.Fatal("stored credential must be a hash")
	}
}

func TestSignupRejectsBadInput(t *testing.T) {
	auth := newAuth(t)

	cases := []struct {
		name                        string
		email, password, role, user string
	}{
		{"bad email", "not-an-email", "longenough", "", "Ada"},
		{"short password", "a@b.com", "short", "", "Ada"},
		{"unknown role", "a@b.com", "longenough", "superuser", "Ada"},
		{"empty name", "a@b.com", "longenough", "", ""},
	}
	for _, tc := range cases {
		if _, err := auth.Signup(tc.email, tc.password, tc.user, tc.role); err == nil {
			t.Errorf("%s: signup should fail", tc.name)
		}
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	auth := newAuth(t)
	if _, err := auth.Signup("ada@example.com", "correct horse", "Ada", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Signup("ada@example.com", "other password", "Ada Again", ""); err == nil {
		t.Fatal("duplicate email should be rejected")
	}
}

func TestLoginExactPasswordOnly(t *testing.T) {
	auth := newAuth(t)
	if _, err := auth.Signup("ada@example.com", "correct horse", "Ada", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := auth.Login("ada@example.com", "wrong horse"); err == nil {
		t.Fatal("wrong password should not log in")
	}
	if _, err := auth.Login("nobody@example.com", "correct horse"); err == nil {
		t.Fatal("unknown email should not log in")
	}

	sess, err := auth.Login("ada@example.com", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	u, err := auth.CurrentUser(sess.Token)
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("token resolved to wrong user: %+v", u)
	}
}

func TestCurrentUserRejectsUnknownToken(t *testing.T) {
	auth := newAuth(t)
	if _, err := auth.CurrentUser("no-such-token"); err == nil {
		t.Fatal("unknown token should be rejected")
	}
	if _, err := auth.CurrentUser(""); err == nil {
		t.Fatal("empty token should be rejected")
	}
}
