package chapa

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRefRoundTrip(t *testing.T) {
	subID := uuid.New()
	ref := NewTxRef(subID, 1756500000)

	encoded := ref.String()
	assert.Equal(t, "chapa_subscription_"+subID.String()+"_1756500000", encoded)

	parsed, err := ParseTxRef(encoded)
	require.NoError(t, err)
	assert.Equal(t, subID, parsed.SubscriptionID)
	assert.Equal(t, int64(1756500000), parsed.Nonce)
}

func TestParseTxRefRejectsForeignReferences(t *testing.T) {
	tests := []struct {
		name  string
		txRef string
	}{
		{
			name:  "empty string",
			txRef: "",
		},
		{
			name:  "wrong prefix",
			txRef: "stripe_sub_12345_99",
		},
		{
			name:  "missing nonce",
			txRef: "chapa_subscription_" + uuid.New().String(),
		},
		{
			name:  "non numeric nonce",
			txRef: "chapa_subscription_" + uuid.New().String() + "_abc",
		},
		{
			name:  "bad subscription id",
			txRef: "chapa_subscription_not-a-uuid_1756500000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTxRef(tt.txRef)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedTxRef))
		})
	}
}
