package i

import (
	"time"
)

// Tokenizer defines methods for issuing and verifying submitter tokens.
type Tokenizer interface {
	// Generate creates a token for subject that expires after ttl.
	Generate(subject string, ttl time.Duration) (string, error)

	// Decode validates a token and returns its subject.
	Decode(token string) (string, error)
}
