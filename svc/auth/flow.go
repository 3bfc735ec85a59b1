package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minemind/authkit/pkg/hasher"
	"github.com/minemind/authkit/pkg/qrcode"
	"github.com/minemind/authkit/pkg/totp"
)

// State names the client-visible position in the authentication flow.
type State string

const (
	StateLogin      State = "login"
	StateRegister   State = "register"
	StateMfaEnroll  State = "mfa_enroll"  // enrollment offer after registration
	StateMfaPending State = "mfa_pending" // second login step for enrolled accounts
	StateReset      State = "reset"
	StateLoggedIn   State = "logged_in"
)

// Enrollment is what BeginEnrollment hands the UI: the raw secret for
// manual entry, the otpauth URI, and a QR rendering of it.
type Enrollment struct {
	Secret string
	URI    string
	QRCode string // data:image/png;base64 URI
}

// ResetSender delivers an issued reset token out of band. Delivery is
// an external collaborator; implementations typically send email.
type ResetSender interface {
	SendResetToken(ctx context.Context, email, token string) error
}

// ResetAck is the acknowledgment RequestReset returns for every
// address, known or not, so responses cannot be used to probe which
// emails have accounts.
const ResetAck = "If an account exists for this address, reset instructions have been sent."

// Flow drives one user session through login, registration, MFA
// enrollment and verification, and password reset. It owns its state
// value; construct one per session and let the UI hold a reference.
// A Flow is not safe for concurrent use: a session is a single
// conversation.
type Flow struct {
	cfg     Config
	store   Store
	boot    *Bootstrap
	sender  ResetSender
	log     *slog.Logger
	sealKey []byte
	now     func() time.Time

	state         State
	account       *Account
	pendingSecret string
}

// FlowOption customizes Flow construction.
type FlowOption func(*Flow)

// WithLogger attaches a structured logger; defaults to slog.Default().
func WithLogger(log *slog.Logger) FlowOption {
	return func(f *Flow) {
		if log != nil {
			f.log = log
		}
	}
}

// WithResetSender attaches the out-of-band delivery collaborator for
// reset tokens. Without one, tokens are issued and bound but not
// delivered anywhere.
func WithResetSender(sender ResetSender) FlowOption {
	return func(f *Flow) { f.sender = sender }
}

// WithClock overrides the time source, for tests exercising TOTP step
// boundaries and token expiry.
func WithClock(now func() time.Time) FlowOption {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFlow builds a session flow over the given store and configuration.
func NewFlow(cfg Config, store Store, opts ...FlowOption) (*Flow, error) {
	f := &Flow{
		cfg:   cfg,
		store: store,
		boot:  NewBootstrap(cfg.AdminPass),
		log:   slog.Default(),
		now:   time.Now,
		state: StateLogin,
	}
	for _, opt := range opts {
		opt(f)
	}

	if cfg.MfaSealKey != "" {
		key, err := totp.DecodeSealKey(cfg.MfaSealKey)
		if err != nil {
			return nil, fmt.Errorf("invalid MFA seal key: %w", err)
		}
		f.sealKey = key
	}

	if f.cfg.ResetTokenSecret == "" {
		// Tokens signed with an ephemeral secret stop working on
		// restart, which is acceptable for the store-less dev setup.
		f.cfg.ResetTokenSecret = uuid.NewString()
	}
	if f.cfg.ResetTokenTTL <= 0 {
		f.cfg.ResetTokenTTL = time.Hour
	}
	if f.cfg.RecoveryCodeCount <= 0 {
		f.cfg.RecoveryCodeCount = 8
	}

	return f, nil
}

// State reports the current flow state.
func (f *Flow) State() State { return f.state }

// Account returns the account attached to the current state: the
// authenticated account in StateLoggedIn, the account awaiting a code
// in StateMfaPending or StateMfaEnroll, nil otherwise.
func (f *Flow) Account() *Account { return f.account }

// Login authenticates an email/password pair. On success the flow
// lands in StateLoggedIn, or StateMfaPending when the account has MFA
// enabled and still needs a code.
func (f *Flow) Login(ctx context.Context, email, password string) error {
	if f.state == StateLoggedIn {
		return ErrInvalidState
	}
	f.state = StateLogin
	f.account = nil
	f.pendingSecret = ""

	if email == AdminEmail {
		return f.loginAdmin(ctx, email, password)
	}

	acct, err := f.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if acct == nil {
		// Burn a digest anyway so a missing account costs the same as
		// a wrong password.
		hasher.Verify(password, "", "")
		f.log.InfoContext(ctx, "login rejected", slog.String("email", email))
		return ErrInvalidCredentials
	}

	if !hasher.Verify(password, acct.Salt, acct.PasswordHash) {
		f.log.InfoContext(ctx, "login rejected", slog.String("email", email))
		return ErrInvalidCredentials
	}

	if acct.MFAEnabled {
		f.account = acct
		f.state = StateMfaPending
		f.log.InfoContext(ctx, "login pending MFA", slog.String("email", email))
		return nil
	}

	f.account = acct
	f.state = StateLoggedIn
	f.log.InfoContext(ctx, "login succeeded", slog.String("email", email))
	return nil
}

// loginAdmin handles the bootstrap identity. A stored record under the
// administrative email is a misconfiguration, not a credential: it must
// neither shadow the injected secret nor grant access.
func (f *Flow) loginAdmin(ctx context.Context, email, password string) error {
	stored, err := f.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if stored != nil {
		f.log.WarnContext(ctx, "stored record shadows bootstrap admin", slog.String("email", email))
		return ErrConfiguration
	}

	if acct, ok := f.boot.Resolve(email, password); ok {
		f.account = acct
		f.state = StateLoggedIn
		f.log.InfoContext(ctx, "bootstrap admin login succeeded")
		return nil
	}

	f.log.InfoContext(ctx, "bootstrap admin login rejected")
	return ErrInvalidCredentials
}

// Register creates a new account and moves to the MFA enrollment offer.
// The account is persisted before the offer, so abandoning enrollment
// still leaves a usable account with MFA disabled.
func (f *Flow) Register(ctx context.Context, email, password string) error {
	if f.state == StateLoggedIn {
		return ErrInvalidState
	}
	f.state = StateRegister
	f.account = nil
	f.pendingSecret = ""

	existing, err := f.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil || email == AdminEmail {
		// The administrative address is reserved: allowing it here
		// would plant exactly the shadow record loginAdmin rejects.
		if email == AdminEmail {
			f.log.WarnContext(ctx, "registration attempted for bootstrap admin address")
		}
		return ErrAccountExists
	}

	salt := hasher.GenerateSalt()
	acct := Account{
		ID:              uuid.NewString(),
		Email:           email,
		PasswordHash:    hasher.Hash(password, salt),
		Salt:            salt,
		MFAEnabled:      false,
		CustomLanguages: map[string]any{},
	}
	if err := f.store.Upsert(ctx, acct); err != nil {
		return err
	}

	f.account = &acct
	f.state = StateMfaEnroll
	f.log.InfoContext(ctx, "account registered", slog.String("email", email))
	return nil
}

// BeginEnrollment generates a fresh TOTP secret and its provisioning
// material. Nothing is persisted until ConfirmEnrollment proves the
// authenticator actually holds the secret.
func (f *Flow) BeginEnrollment(ctx context.Context) (Enrollment, error) {
	if f.state != StateMfaEnroll || f.account == nil {
		return Enrollment{}, ErrInvalidState
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return Enrollment{}, err
	}

	uri, err := totp.KeyURI(totp.KeyParams{
		Secret:      secret,
		AccountName: f.account.Email,
		Issuer:      f.cfg.Issuer,
	})
	if err != nil {
		return Enrollment{}, err
	}

	qr, err := qrcode.RenderDataURI(uri, 0)
	if err != nil {
		return Enrollment{}, err
	}

	f.pendingSecret = secret
	return Enrollment{Secret: secret, URI: uri, QRCode: qr}, nil
}

// ConfirmEnrollment validates the first code from the authenticator,
// persists the enrollment and logs the session in. It returns the
// plaintext recovery codes, shown to the user exactly once.
func (f *Flow) ConfirmEnrollment(ctx context.Context, code string) ([]string, error) {
	if f.state != StateMfaEnroll || f.account == nil || f.pendingSecret == "" {
		return nil, ErrInvalidState
	}

	ok, err := totp.ValidateAt(code, f.pendingSecret, f.now())
	if err != nil || !ok {
		f.log.InfoContext(ctx, "MFA enrollment code rejected", slog.String("email", f.account.Email))
		return nil, ErrInvalidMfaCode
	}

	recoveryCodes, err := totp.GenerateRecoveryCodes(f.cfg.RecoveryCodeCount)
	if err != nil {
		return nil, err
	}
	hashed := make([]string, len(recoveryCodes))
	for i, rc := range recoveryCodes {
		hashed[i] = totp.HashRecoveryCode(rc)
	}

	storedSecret := f.pendingSecret
	if f.sealKey != nil {
		if storedSecret, err = totp.SealSecret(f.pendingSecret, f.sealKey); err != nil {
			return nil, err
		}
	}

	f.account.MFAEnabled = true
	f.account.MFASecret = storedSecret
	f.account.RecoveryCodes = hashed
	if err := f.store.Upsert(ctx, *f.account); err != nil {
		return nil, err
	}

	f.pendingSecret = ""
	f.state = StateLoggedIn
	f.log.InfoContext(ctx, "MFA enrolled", slog.String("email", f.account.Email))
	return recoveryCodes, nil
}

// SkipEnrollment declines the MFA offer and logs the session in with
// MFA left disabled.
func (f *Flow) SkipEnrollment() error {
	if f.state != StateMfaEnroll || f.account == nil {
		return ErrInvalidState
	}
	f.pendingSecret = ""
	f.state = StateLoggedIn
	return nil
}

// Verify completes the second login step with a TOTP code, or consumes
// one of the account's recovery codes in its place.
func (f *Flow) Verify(ctx context.Context, code string) error {
	if f.state != StateMfaPending || f.account == nil {
		return ErrInvalidState
	}

	secret := f.account.MFASecret
	if f.sealKey != nil {
		var err error
		if secret, err = totp.OpenSecret(f.account.MFASecret, f.sealKey); err != nil {
			return fmt.Errorf("unseal MFA secret: %w", err)
		}
	}

	if ok, err := totp.ValidateAt(code, secret, f.now()); err == nil && ok {
		f.state = StateLoggedIn
		f.log.InfoContext(ctx, "MFA verified", slog.String("email", f.account.Email))
		return nil
	}

	if f.consumeRecoveryCode(ctx, code) {
		f.state = StateLoggedIn
		f.log.InfoContext(ctx, "MFA verified via recovery code", slog.String("email", f.account.Email))
		return nil
	}

	f.log.InfoContext(ctx, "MFA code rejected", slog.String("email", f.account.Email))
	return ErrInvalidMfaCode
}

func (f *Flow) consumeRecoveryCode(ctx context.Context, code string) bool {
	for i, hashed := range f.account.RecoveryCodes {
		if totp.VerifyRecoveryCode(code, hashed) {
			f.account.RecoveryCodes = append(
				f.account.RecoveryCodes[:i],
				f.account.RecoveryCodes[i+1:]...,
			)
			if err := f.store.Upsert(ctx, *f.account); err != nil {
				f.log.ErrorContext(ctx, "failed to consume recovery code",
					slog.String("email", f.account.Email), slog.String("error", err.Error()))
				return false
			}
			return true
		}
	}
	return false
}

// BackToLogin abandons a pending MFA verification.
func (f *Flow) BackToLogin() error {
	if f.state != StateMfaPending {
		return ErrInvalidState
	}
	f.account = nil
	f.pendingSecret = ""
	f.state = StateLogin
	return nil
}

// Logout ends an authenticated session, clearing all in-memory account
// material.
func (f *Flow) Logout() error {
	if f.state != StateLoggedIn {
		return ErrInvalidState
	}
	f.account = nil
	f.pendingSecret = ""
	f.state = StateLogin
	return nil
}

// SetCustomLanguage mutates the opaque per-user language bag. Credential
// fields are untouched; the bootstrap admin's bag lives only in memory.
func (f *Flow) SetCustomLanguage(ctx context.Context, code string, pack any) error {
	if f.state != StateLoggedIn || f.account == nil {
		return ErrInvalidState
	}

	if f.account.CustomLanguages == nil {
		f.account.CustomLanguages = map[string]any{}
	}
	f.account.CustomLanguages[code] = pack

	if f.account.IsAdmin {
		return nil
	}
	return f.store.Upsert(ctx, *f.account)
}
