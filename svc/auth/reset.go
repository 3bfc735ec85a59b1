package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minemind/authkit/pkg/hasher"
	"github.com/minemind/authkit/pkg/token"
)

// resetClaims is the signed payload of a password-reset token.
type resetClaims struct {
	Email     string    `json:"email"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"exp"`
}

// RequestReset issues a password-reset token for the address and hands
// it to the ResetSender. The returned acknowledgment is identical
// whether or not an account exists, and the token is computed either
// way, so neither the response text nor its timing reveals which
// addresses are registered.
func (f *Flow) RequestReset(ctx context.Context, email string) (string, error) {
	if f.state == StateLoggedIn {
		return "", ErrInvalidState
	}
	f.state = StateReset

	claims := resetClaims{
		Email:     email,
		TokenID:   uuid.NewString(),
		ExpiresAt: f.now().Add(f.cfg.ResetTokenTTL),
	}
	tok, err := token.Issue(claims, f.cfg.ResetTokenSecret)
	if err != nil {
		return "", err
	}

	acct, err := f.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	// The bootstrap admin has no stored credential to reset.
	if acct == nil || email == AdminEmail {
		// Unknown address: the token just issued goes nowhere.
		f.log.InfoContext(ctx, "reset requested")
		return ResetAck, nil
	}

	acct.ResetTokenID = claims.TokenID
	if err := f.store.Upsert(ctx, *acct); err != nil {
		return "", err
	}

	if f.sender != nil {
		if err := f.sender.SendResetToken(ctx, email, tok); err != nil {
			// Delivery is best effort from the flow's perspective; the
			// acknowledgment stays the same to avoid an oracle.
			f.log.ErrorContext(ctx, "reset token delivery failed", slog.String("error", err.Error()))
		}
	}

	f.log.InfoContext(ctx, "reset requested")
	return ResetAck, nil
}

// RedeemReset exchanges a valid reset token for a new password. The
// token must carry the id currently bound to the account, so each token
// works at most once and issuing a new one supersedes the old.
func (f *Flow) RedeemReset(ctx context.Context, tok, newPassword string) error {
	if f.state == StateLoggedIn {
		return ErrInvalidState
	}

	claims, err := token.Parse[resetClaims](tok, f.cfg.ResetTokenSecret)
	if err != nil {
		return ErrInvalidResetToken
	}
	if f.now().After(claims.ExpiresAt) {
		return ErrInvalidResetToken
	}

	acct, err := f.store.FindByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if acct == nil || acct.ResetTokenID == "" || acct.ResetTokenID != claims.TokenID {
		return ErrInvalidResetToken
	}

	salt := hasher.GenerateSalt()
	acct.Salt = salt
	acct.PasswordHash = hasher.Hash(newPassword, salt)
	acct.ResetTokenID = ""
	if err := f.store.Upsert(ctx, *acct); err != nil {
		return err
	}

	f.state = StateLogin
	f.log.InfoContext(ctx, "password reset redeemed", slog.String("email", claims.Email))
	return nil
}
