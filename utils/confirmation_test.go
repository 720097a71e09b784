package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
)

func TestConfirmationPrefix(t *testing.T) {
	require.Equal(t, "AC", ConfirmationPrefix(domain.KindProperty))
	require.Equal(t, "BK", ConfirmationPrefix(domain.KindService))
	require.Equal(t, "BK", ConfirmationPrefix(domain.KindExperience))
}

func TestGenerateConfirmationNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^(AC|BK)[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number, err := GenerateConfirmationNumber(domain.KindProperty)
		require.NoError(t, err)
		require.Regexp(t, pattern, number)
		seen[number] = true
	}
	// 100 draws from a 36^8 space should never repeat.
	require.Len(t, seen, 100)
}
