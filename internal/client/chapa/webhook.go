package chapa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the gateway's HMAC of the raw webhook body.
const SignatureHeader = "X-Chapa-Signature"

// WebhookEvent is the payload the gateway posts on transaction state
// changes. Only TxRef is trusted; everything else is re-read from the
// verify endpoint.
type WebhookEvent struct {
	Event     string  `json:"event"`
	TxRef     string  `json:"tx_ref"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// VerifySignature checks the HMAC-SHA256 hex signature of a raw webhook
// body against the shared webhook secret.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
