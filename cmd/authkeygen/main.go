// Command authkeygen prints fresh secrets for the auth service
// environment: an AES-256 seal key for MFA secrets at rest and a
// signing secret for password-reset tokens.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/minemind/authkit/pkg/totp"
)

func main() {
	sealKey, err := totp.GenerateSealKey()
	if err != nil {
		log.Fatalf("failed to generate seal key: %v", err)
	}

	signingSecret := make([]byte, 32)
	if _, err := rand.Read(signingSecret); err != nil {
		log.Fatalf("failed to generate signing secret: %v", err)
	}

	fmt.Printf("MFA_SEAL_KEY=%s\n", sealKey)
	fmt.Printf("RESET_TOKEN_SECRET=%s\n", base64.StdEncoding.EncodeToString(signingSecret))
}
