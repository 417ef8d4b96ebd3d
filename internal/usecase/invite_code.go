package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	inviteCodeChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength  = 8
	inviteCodeRetries = 5
)

// CodeAvailabilityChecker is satisfied by the invite repository.
type CodeAvailabilityChecker interface {
	ExistsByCode(code string) (bool, error)
}

// GenerateInviteCode rejection-samples random codes until one is free.
// Collisions are vanishingly rare at 36^8 but the loop keeps creation safe
// regardless.
func GenerateInviteCode(checker CodeAvailabilityChecker) (string, error) {
	for i := 0; i < inviteCodeRetries; i++ {
		code, err := randomCode(inviteCodeLength)
		if err != nil {
			return "", err
		}

		exists, err := checker.ExistsByCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	// If collisions persist, try once more with an extra character.
	code, err := randomCode(inviteCodeLength + 1)
	if err != nil {
		return "", err
	}
	exists, err := checker.ExistsByCode(code)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("failed to generate unique invite code")
	}
	return code, nil
}

func randomCode(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(inviteCodeChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = inviteCodeChars[n.Int64()]
	}
	return string(b), nil
}
