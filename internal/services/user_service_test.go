package services

import (
	"database/sql"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/viremo/viremo-be/internal/database"
	"golang.org/x/crypto/bcrypt"
)

// newTestDB opens a throwaway SQLite database with the full schema applied,
// so scans go through the real driver's type conversion.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "viremo.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func setupUserMock(t *testing.T) (*UserService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	service := NewUserService(db)
	cleanup := func() { db.Close() }
	return service, mock, cleanup
}

func TestCreateUser_Success(t *testing.T) {
	service, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO users(id, email, password_hash) VALUES(?, ?, ?)")).
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "alice@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := service.CreateUser("  alice@example.com ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q; want trimmed alice@example.com", user.Email)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in returned user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_EmptyFields(t *testing.T) {
	service, mock, cleanup := setupUserMock(t)
	defer cleanup()

	if _, err := service.CreateUser("", "secret"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := service.CreateUser("bob@example.com", ""); err == nil {
		t.Error("expected error for empty password")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched: %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"correct password", "secret", false},
		{"wrong password", "nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock, cleanup := setupUserMock(t)
			defer cleanup()

			rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow("u1", "alice@example.com", string(hash), time.Now())
			mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM users WHERE email = ?")).
				WithArgs("alice@example.com").
				WillReturnRows(rows)

			user, err := service.AuthenticateUser("alice@example.com", tt.password)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected authentication to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "u1" {
				t.Errorf("user id = %q; want u1", user.ID)
			}
			if user.PasswordHash != "" {
				t.Error("password hash leaked in returned user")
			}
		})
	}
}

func TestGetUserByID_LastSignIn(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	activity := NewActivityService(db)

	created, err := users.CreateUser("alice@example.com", "secret")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	got, err := users.GetUserByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error before any sign-in: %v", err)
	}
	if got.LastSignInAt != nil {
		t.Errorf("LastSignInAt = %v; want nil before any sign-in", got.LastSignInAt)
	}
	if got.AvatarURL != nil {
		t.Errorf("AvatarURL = %v; want nil without a profile row", got.AvatarURL)
	}

	if err := activity.RecordLogin(created.ID); err != nil {
		t.Fatalf("failed to record sign-in: %v", err)
	}

	got, err = users.GetUserByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error after a sign-in: %v", err)
	}
	if got.LastSignInAt == nil {
		t.Fatal("LastSignInAt = nil; want the recorded sign-in timestamp")
	}
	if got.LastSignInAt.IsZero() {
		t.Error("LastSignInAt is the zero time")
	}
}

func TestGetUserByID_Unknown(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	if _, err := users.GetUserByID("no-such-id"); err == nil {
		t.Error("expected an error for an unknown user id")
	}
}

func TestAuthenticateUser_UnknownEmail(t *testing.T) {
	service, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM users WHERE email = ?")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	if _, err := service.AuthenticateUser("ghost@example.com", "secret"); err == nil {
		t.Error("expected authentication to fail for unknown email")
	}
}
