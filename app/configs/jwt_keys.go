package configs

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintJWTKey creates a fresh random signing secret and writes it
// to .env.new_keys for the operator to copy into the real .env. Rotating the
// secret invalidates every outstanding token.
func GenerateAndPrintJWTKey() error {
	fmt.Println("Generating new JWT signing key...")

	key := securecookie.GenerateRandomKey(64)
	if key == nil {
		return fmt.Errorf("error: could not generate signing key")
	}

	keyBase64 := base64.URLEncoding.EncodeToString(key)

	fmt.Println("\n================================================")
	fmt.Printf("JWT_SECRET=%s\n", keyBase64)
	fmt.Println("================================================")

	envFilePath := ".env.new_keys"
	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "JWT_SECRET=%s\n", keyBase64); err != nil {
		return fmt.Errorf("failed to write key to file %s: %w", envFilePath, err)
	}

	fmt.Printf("\n✅ Key has been written to '%s'.\n", envFilePath)
	fmt.Println("Please copy this line from that file into your actual .env file.")

	return nil
}
