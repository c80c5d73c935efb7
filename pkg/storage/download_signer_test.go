package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDownloadSignerRoundTrip(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Hour)
	token, expiresAt, err := signer.Sign("job-1", "job-1.csv")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	jobID, name, parsedExpiry, err := signer.Verify(token, false)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, "job-1.csv", name)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestDownloadSignerExpired(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Millisecond*10)
	token, _, err := signer.Sign("job-1", "job-1.csv")
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 20)

	_, _, _, err = signer.Verify(token, false)
	require.Error(t, err)

	// sweeps still need to resolve expired tokens
	jobID, name, _, err := signer.Verify(token, true)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, "job-1.csv", name)
}

func TestDownloadSignerRejectsTamperedToken(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Hour)
	token, _, err := signer.Sign("job-1", "job-1.csv")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[2] = parts[2] + "x"
	_, _, _, err = signer.Verify(strings.Join(parts, "."), false)
	require.Error(t, err)

	other := NewDownloadSigner("different-secret", time.Hour)
	_, _, _, err = other.Verify(token, false)
	require.Error(t, err)
}
