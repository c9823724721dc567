package application

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"regexp"
	"strings"
)

// clientSecretBytes gives 256 bits of randomness per secret.
const clientSecretBytes = 32

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "app"
	}
	return slug
}

// newClientID derives a readable, globally unique identifier: the slug of
// the application name plus an 8-hex-char random suffix. Uniqueness is
// enforced by the database; collisions regenerate the suffix.
func newClientID(name string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return slugify(name) + "-" + hex.EncodeToString(suffix), nil
}

// newClientSecret returns a URL-safe secret with clientSecretBytes of
// entropy. It is handed to the caller exactly once; only a bcrypt hash of
// it is persisted.
func newClientSecret() (string, error) {
	raw := make([]byte, clientSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
