package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return Service{
		Secret: []byte("test-jwt-secret"),
		TTL:    30 * 24 * time.Hour,
	}
}

func TestService_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestService_Verify_BearerPrefix(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	token, err := svc.Issue(7)
	require.NoError(t, err)

	userID, err := svc.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestService_Verify_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	svc.TTL = -time.Hour

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestService_Verify_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	valid, err := svc.Issue(42)
	require.NoError(t, err)

	other := Service{Secret: []byte("another-secret"), TTL: time.Hour}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "not-a-valid-jwt"},
		{name: "empty", raw: ""},
		{name: "truncated", raw: valid[:len(valid)-5]},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Verify(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		_, err := other.Verify(valid)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
