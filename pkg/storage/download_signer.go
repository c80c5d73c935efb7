package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DownloadSigner mints expiring download tokens for export files. The token
// carries the job id, file name and expiry, authenticated with HMAC-SHA256,
// so honoring a download needs no server-side session.
type DownloadSigner struct {
	key []byte
	ttl time.Duration
}

// NewDownloadSigner builds a signer keyed on secret. Tokens expire after ttl.
func NewDownloadSigner(secret string, ttl time.Duration) *DownloadSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DownloadSigner{key: []byte(secret), ttl: ttl}
}

// Sign issues a token for the export file belonging to jobID.
func (d *DownloadSigner) Sign(jobID, name string) (string, time.Time, error) {
	if jobID == "" || name == "" {
		return "", time.Time{}, fmt.Errorf("job id and file name required")
	}
	if len(d.key) == 0 {
		return "", time.Time{}, fmt.Errorf("signing key missing")
	}
	expiresAt := time.Now().Add(d.ttl)
	encodedJob := base64.RawURLEncoding.EncodeToString([]byte(jobID))
	encodedName := base64.RawURLEncoding.EncodeToString([]byte(name))
	exp := strconv.FormatInt(expiresAt.Unix(), 10)
	token := strings.Join([]string{encodedJob, exp, encodedName, d.sign(encodedJob, exp, encodedName)}, ".")
	return token, expiresAt, nil
}

// Verify checks a token's signature and expiry and returns the embedded job
// id and file name. Expiry is skipped when allowExpired is set.
func (d *DownloadSigner) Verify(token string, allowExpired bool) (string, string, time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", time.Time{}, fmt.Errorf("malformed download token")
	}
	encodedJob, exp, encodedName, signature := parts[0], parts[1], parts[2], parts[3]

	expected := d.sign(encodedJob, exp, encodedName)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", "", time.Time{}, fmt.Errorf("download token signature mismatch")
	}

	jobID, err := base64.RawURLEncoding.DecodeString(encodedJob)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode job id: %w", err)
	}
	name, err := base64.RawURLEncoding.DecodeString(encodedName)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode file name: %w", err)
	}
	expUnix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode token expiry: %w", err)
	}
	expiresAt := time.Unix(expUnix, 0)
	if !allowExpired && time.Now().After(expiresAt) {
		return "", "", time.Time{}, fmt.Errorf("download token expired")
	}
	return string(jobID), string(name), expiresAt, nil
}

func (d *DownloadSigner) sign(encodedJob, exp, encodedName string) string {
	mac := hmac.New(sha256.New, d.key)
	fmt.Fprintf(mac, "%s\n%s\n%s", encodedJob, exp, encodedName)
	return hex.EncodeToString(mac.Sum(nil))
}
