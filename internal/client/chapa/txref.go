package chapa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const txRefPrefix = "chapa_subscription_"

// ErrMalformedTxRef is returned when a transaction reference does not
// match the format this service issues.
var ErrMalformedTxRef = errors.New("malformed transaction reference")

// TxRef is the transaction reference attached to every checkout we
// initiate. The gateway echoes it back verbatim in webhooks and verify
// responses, so it is the only correlation key we can rely on.
type TxRef struct {
	SubscriptionID uuid.UUID
	Nonce          int64
}

// NewTxRef builds a reference for a subscription using the given nonce,
// normally a unix timestamp. Each checkout attempt gets a fresh nonce so
// references stay unique per attempt.
func NewTxRef(subscriptionID uuid.UUID, nonce int64) TxRef {
	return TxRef{SubscriptionID: subscriptionID, Nonce: nonce}
}

// String encodes the reference in the wire format
// "chapa_subscription_<subscription-id>_<nonce>".
func (r TxRef) String() string {
	return fmt.Sprintf("%s%s_%d", txRefPrefix, r.SubscriptionID, r.Nonce)
}

// ParseTxRef decodes a wire-format reference. References produced by
// other systems fail with ErrMalformedTxRef.
func ParseTxRef(s string) (TxRef, error) {
	rest, ok := strings.CutPrefix(s, txRefPrefix)
	if !ok {
		return TxRef{}, errors.Wrapf(ErrMalformedTxRef, "missing prefix in %q", s)
	}
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 || idx == len(rest)-1 {
		return TxRef{}, errors.Wrapf(ErrMalformedTxRef, "missing nonce in %q", s)
	}
	id, err := uuid.Parse(rest[:idx])
	if err != nil {
		return TxRef{}, errors.Wrapf(ErrMalformedTxRef, "bad subscription id in %q", s)
	}
	nonce, err := strconv.ParseInt(rest[idx+1:], 10, 64)
	if err != nil {
		return TxRef{}, errors.Wrapf(ErrMalformedTxRef, "bad nonce in %q", s)
	}
	return TxRef{SubscriptionID: id, Nonce: nonce}, nil
}
