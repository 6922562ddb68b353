package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/token"
)

func TestIssueAndValidate(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	accountID := uuid.New()

	signed, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestValidate_Tampered(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	signed, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one byte in the signature
	tampered := []byte(signed)
	last := len(tampered) - 1
	if tampered[last] == 'a' {
		tampered[last] = 'b'
	} else {
		tampered[last] = 'a'
	}

	_, err = svc.Validate(string(tampered))
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := token.NewService("secret-one", time.Hour)
	validator := token.NewService("secret-two", time.Hour)

	signed, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = validator.Validate(signed)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute)

	signed, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestValidate_Garbage(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not a jwt", input: "definitely-not-a-token"},
		{name: "wrong segment count", input: "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
