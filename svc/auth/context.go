package auth

import "context"

type accountContextKey struct{}

// WithAccount stores the authenticated account in the context for
// downstream middleware and handlers.
func WithAccount(ctx context.Context, acct *Account) context.Context {
	return context.WithValue(ctx, accountContextKey{}, acct)
}

// AccountFromContext retrieves the authenticated account, or nil when
// none was stored.
func AccountFromContext(ctx context.Context) *Account {
	acct, _ := ctx.Value(accountContextKey{}).(*Account)
	return acct
}
