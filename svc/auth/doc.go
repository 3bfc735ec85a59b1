// Package auth implements the identity core of MineMind Forge:
// registration, credential verification, TOTP-based multi-factor
// enrollment and verification, a deployment-injected administrative
// bootstrap identity, and password-reset token issuance and redemption.
//
// The central type is Flow, a per-session state machine:
//
//	login ──Login──▶ logged_in                  (no MFA)
//	login ──Login──▶ mfa_pending ──Verify──▶ logged_in
//	register ──Register──▶ mfa_enroll ──ConfirmEnrollment/SkipEnrollment──▶ logged_in
//	reset ──RequestReset──▶ (token issued out of band)
//
// Accounts live behind the Store interface; MemoryStore, FileStore,
// RedisStore and PGStore cover the supported media. The bootstrap admin
// (admin@minemind.net) authenticates against an environment-injected
// secret and is never written to any store — a stored record under that
// address is rejected as a configuration error so it cannot shadow the
// bootstrap identity.
//
// Error values are user-facing and deliberately coarse: failed logins
// never say whether the email or the password was wrong, and reset
// requests acknowledge identically for known and unknown addresses.
//
// # Usage
//
//	var cfg auth.Config
//	config.MustLoad(&cfg)
//
//	flow, err := auth.NewFlow(cfg, auth.NewFileStore("accounts.json"),
//	    auth.WithLogger(log))
//	if err != nil { ... }
//
//	if err := flow.Login(ctx, email, password); err != nil { ... }
//	switch flow.State() {
//	case auth.StateLoggedIn:    // done
//	case auth.StateMfaPending:  // prompt for a code, then flow.Verify
//	}
package auth
