package auth

import (
	"context"
	"errors"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrCaptchaRequired     = errors.New("captcha challenge required")
	ErrCaptchaInvalid      = errors.New("captcha answer is wrong or expired")
	ErrTooManyAttempts     = errors.New("too many failed login attempts")
	ErrUserNotFound        = errors.New("user not found")
)

type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if validator.IsEmpty(r.CaptchaID) || validator.IsEmpty(r.CaptchaAnswer) {
		errs = append(errs, validator.ValidationError{Field: "captcha", Message: "captcha_id and captcha_answer are required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresIn int64  `json:"-"`
}

type CaptchaResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

type AuthService interface {
	NewCaptcha() CaptchaResponse
	Login(ctx context.Context, req LoginRequest, remoteAddr string) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
