package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSchema creates the accounts table. Run it once at deployment; the
// store itself never mutates the schema.
const PGSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	email            TEXT PRIMARY KEY,
	id               TEXT NOT NULL,
	password_hash    TEXT NOT NULL,
	salt             TEXT NOT NULL,
	mfa_enabled      BOOLEAN NOT NULL DEFAULT FALSE,
	mfa_secret       TEXT NOT NULL DEFAULT '',
	recovery_codes   TEXT[] NOT NULL DEFAULT '{}',
	reset_token_id   TEXT NOT NULL DEFAULT '',
	custom_languages JSONB NOT NULL DEFAULT '{}'
)`

// PGStore persists accounts in Postgres, one row per email. Upsert maps
// to INSERT ... ON CONFLICT so per-email serialization comes from the
// database's row locking.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore wraps an already-connected pool (see pkg/pg).
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const pgAccountColumns = `email, id, password_hash, salt, mfa_enabled, mfa_secret, recovery_codes, reset_token_id, custom_languages`

func (s *PGStore) List(ctx context.Context) ([]Account, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+pgAccountColumns+` FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *PGStore) Upsert(ctx context.Context, acct Account) error {
	languages, err := json.Marshal(acct.CustomLanguages)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO accounts (`+pgAccountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO UPDATE SET
			id               = EXCLUDED.id,
			password_hash    = EXCLUDED.password_hash,
			salt             = EXCLUDED.salt,
			mfa_enabled      = EXCLUDED.mfa_enabled,
			mfa_secret       = EXCLUDED.mfa_secret,
			recovery_codes   = EXCLUDED.recovery_codes,
			reset_token_id   = EXCLUDED.reset_token_id,
			custom_languages = EXCLUDED.custom_languages`,
		acct.Email, acct.ID, acct.PasswordHash, acct.Salt, acct.MFAEnabled,
		acct.MFASecret, acct.RecoveryCodes, acct.ResetTokenID, languages,
	)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

func (s *PGStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+pgAccountColumns+` FROM accounts WHERE email = $1`, email)

	acct, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func scanAccount(row pgx.Row) (Account, error) {
	var (
		acct      Account
		languages []byte
	)
	err := row.Scan(
		&acct.Email, &acct.ID, &acct.PasswordHash, &acct.Salt, &acct.MFAEnabled,
		&acct.MFASecret, &acct.RecoveryCodes, &acct.ResetTokenID, &languages,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, err
	}
	if err != nil {
		return Account{}, fmt.Errorf("scan account: %w", err)
	}
	if len(languages) > 0 {
		if err := json.Unmarshal(languages, &acct.CustomLanguages); err != nil {
			return Account{}, fmt.Errorf("decode account languages: %w", err)
		}
	}
	return acct, nil
}
