// Package hasher implements the salted password digest used by the
// credential store: SHA-256 over password+salt, lowercase hex encoded.
//
// The functions are pure and storage-agnostic; generating the salt,
// persisting the digest and deciding when to re-hash are the caller's
// responsibility. Comparison goes through Verify which is constant-time
// with respect to the stored digest.
//
// # Usage
//
//	salt := hasher.GenerateSalt()
//	digest := hasher.Hash(password, salt)
//	// ... persist digest and salt ...
//	ok := hasher.Verify(submitted, salt, digest)
package hasher
