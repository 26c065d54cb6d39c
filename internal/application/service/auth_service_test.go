package service

import (
	"context"
	"testing"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/pkg/apperror"
	"github.com/dealflowhq/dealflow-api/pkg/email"
	"github.com/dealflowhq/dealflow-api/pkg/oauth"
	"github.com/dealflowhq/dealflow-api/pkg/utils"
)

func authFixture() (*AuthService, *fakeUserRepo, *fakePasswordResetRepo) {
	users := newFakeUserRepo()
	resets := newFakePasswordResetRepo()
	jwt := utils.NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	svc := NewAuthService(users, resets, jwt, email.NewEmailService(email.EmailConfig{}))
	return svc, users, resets
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := authFixture()

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Jules",
		LastName:  "Dealer",
		Email:     "jules@example.com",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Password == "hunter22" {
		t.Error("password must be stored hashed")
	}

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := authFixture()

	input := &RegisterInput{Email: "jules@example.com", Password: "hunter22"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if apperror.GetAppError(err).Code != 409 {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := authFixture()

	_, _ = svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})

	_, err := svc.Login(context.Background(), &LoginInput{Email: "jules@example.com", Password: "wrong"})
	if apperror.GetAppError(err).Code != 401 {
		t.Errorf("expected unauthorized for wrong password, got %v", err)
	}

	_, err = svc.Login(context.Background(), &LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	if apperror.GetAppError(err).Code != 401 {
		t.Errorf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc, _, _ := authFixture()

	_, _ = svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})
	out, err := svc.Login(context.Background(), &LoginInput{Email: "jules@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); apperror.GetAppError(err).Code != 401 {
		t.Errorf("expected unauthorized for a bad refresh token, got %v", err)
	}
}

func TestLoginWithGoogleCreatesAccount(t *testing.T) {
	svc, users, _ := authFixture()

	out, err := svc.LoginWithGoogle(context.Background(), &oauth.GoogleUserInfo{
		ID:        "google-123",
		Email:     "jules@example.com",
		GivenName: "Jules",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Provider != "google" {
		t.Errorf("expected google provider, got %s", out.User.Provider)
	}
	if len(users.users) != 1 {
		t.Errorf("expected one account, got %d", len(users.users))
	}
}

func TestLoginWithGoogleLinksLocalAccount(t *testing.T) {
	svc, users, _ := authFixture()

	local, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	local.Provider = "local"
	_ = users.Update(context.Background(), local)

	out, err := svc.LoginWithGoogle(context.Background(), &oauth.GoogleUserInfo{
		ID:    "google-123",
		Email: "jules@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.ID != local.ID {
		t.Error("Google sign-in must link, not duplicate, the local account")
	}
	if out.User.Provider != "google" || out.User.ProviderID == nil {
		t.Errorf("account not linked: %+v", out.User)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := authFixture()

	user, _ := svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "hunter33",
	})
	if err == nil {
		t.Fatal("expected error for wrong current password")
	}

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "hunter22",
		NewPassword:     "hunter33",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginInput{Email: "jules@example.com", Password: "hunter33"}); err != nil {
		t.Errorf("new password must work: %v", err)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, resets := authFixture()

	err := svc.ForgotPassword(context.Background(), &ForgotPasswordInput{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("unknown emails must not produce an error: %v", err)
	}
	if len(resets.tokens) != 0 {
		t.Error("no token may be minted for an unknown email")
	}
}

func TestResetPassword(t *testing.T) {
	svc, _, resets := authFixture()

	_, _ = svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})
	_ = resets.Create(context.Background(), &entity.PasswordResetToken{
		Email:     "jules@example.com",
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	err := svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "jules@example.com",
		Token:       "reset-token",
		NewPassword: "hunter33",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginInput{Email: "jules@example.com", Password: "hunter33"}); err != nil {
		t.Errorf("new password must work: %v", err)
	}

	err = svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "jules@example.com",
		Token:       "reset-token",
		NewPassword: "hunter44",
	})
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("a consumed token must be rejected, got %v", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, _, resets := authFixture()

	_, _ = svc.Register(context.Background(), &RegisterInput{
		Email:    "jules@example.com",
		Password: "hunter22",
	})
	_ = resets.Create(context.Background(), &entity.PasswordResetToken{
		Email:     "jules@example.com",
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	})

	err := svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "jules@example.com",
		Token:       "stale-token",
		NewPassword: "hunter33",
	})
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("expected bad request for an expired token, got %v", err)
	}
}
