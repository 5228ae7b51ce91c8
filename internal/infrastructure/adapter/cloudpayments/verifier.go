package cloudpayments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/vooz/donation-processor/internal/domain/port/gateway"
)

var _ gateway.SignatureVerifier = (*HMACVerifier)(nil)

// HMACVerifier checks the X-Content-HMAC header of processor notifications
type HMACVerifier struct {
	secret       []byte
	unconfigured bool
}

// NewHMACVerifier creates a verifier for secret. With unconfigured set every
// body is accepted; the caller decides that from the placeholder sentinel.
func NewHMACVerifier(secret string, unconfigured bool) *HMACVerifier {
	return &HMACVerifier{
		secret:       []byte(secret),
		unconfigured: unconfigured,
	}
}

// Verify compares base64(HMAC-SHA256(rawBody)) with signature in constant time
func (v *HMACVerifier) Verify(rawBody []byte, signature string) bool {
	if v.unconfigured {
		return true
	}

	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}

	return hmac.Equal([]byte(Sign(rawBody, v.secret)), []byte(signature))
}

// Sign returns the header value the processor sends for body
func Sign(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
