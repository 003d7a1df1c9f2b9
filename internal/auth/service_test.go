package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"golang.org/x/crypto/bcrypt"
)

func mockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRegisterIssuesTokens(t *testing.T) {
	mock := mockPool(t)
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "sam@example.com", "sam", pgxmock.AnyArg(), "Sam", "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	user, tokens, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "sam@example.com",
		Username:    "sam",
		Password:    "hunter22",
		DisplayName: "Sam",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || user.Email != "sam@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Fatalf("password hash mismatch")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" || tokens.TokenType != "Bearer" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := NewService("test-secret", nil)
	if _, _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	mock := mockPool(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, username, password_hash`).
		WithArgs("sam@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "display_name", "avatar_url", "created_at", "updated_at"}).
			AddRow("user-1", "sam@example.com", "sam", string(hash), "Sam", "", now, now))

	svc := NewService("test-secret", mock)
	if _, _, err := svc.Login(context.Background(), LoginRequest{Email: "sam@example.com", Password: "wrong"}); err == nil {
		t.Fatalf("expected invalid credentials")
	}
}

func TestLoginSuccess(t *testing.T) {
	mock := mockPool(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, username, password_hash`).
		WithArgs("sam@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "display_name", "avatar_url", "created_at", "updated_at"}).
			AddRow("user-1", "sam@example.com", "sam", string(hash), "Sam", "", now, now))
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	user, tokens, err := svc.Login(context.Background(), LoginRequest{Email: "sam@example.com", Password: "correct"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "user-1" || tokens.AccessToken == "" {
		t.Fatalf("unexpected result: %+v %+v", user, tokens)
	}
}

func TestValidateRefreshToken(t *testing.T) {
	mock := mockPool(t)
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(digest(tokens.RefreshToken)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("user-1", time.Now().Add(time.Hour)))

	userID, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil || userID != "user-1" {
		t.Fatalf("validate refresh: %v user=%s", err, userID)
	}

	// expired row
	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(digest(tokens.RefreshToken)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("user-1", time.Now().Add(-time.Hour)))
	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected expired token error")
	}

	if _, err := svc.ValidateRefreshToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}
