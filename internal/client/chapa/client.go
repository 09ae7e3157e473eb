package chapa

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	httpclient "github.com/lucybridge/subscription-api/internal/client/http"
	"github.com/lucybridge/subscription-api/internal/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrGatewayError covers transport failures and gateway-side error
	// responses that are not attributable to our request.
	ErrGatewayError = errors.New("payment gateway error")

	// ErrTransactionNotFound means the gateway has no record of the
	// transaction reference.
	ErrTransactionNotFound = errors.New("transaction not found at gateway")
)

// Client talks to the Chapa payment gateway.
type Client struct {
	http      *httpclient.HTTPClient
	secretKey string
}

// NewClient builds a gateway client with retrying transport. Verify calls
// are safe to retry; initialize calls are not retried on 4xx because the
// gateway rejects duplicate tx_refs.
func NewClient(baseURL, secretKey string, collector httpclient.MetricsCollector) *Client {
	options := []httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithTimeout(15 * time.Second),
		httpclient.WithRetryConfig(httpclient.DefaultRetryConfig()),
	}
	if collector != nil {
		options = append(options, httpclient.WithMetricsCollector(collector))
	}
	return &Client{
		http:      httpclient.NewHTTPClient(options...),
		secretKey: secretKey,
	}
}

// InitializeRequest is the checkout initialization payload.
type InitializeRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
}

// VerifyResult is the settled view of a transaction after verification.
type VerifyResult struct {
	TxRef       string
	Reference   string
	Status      string
	AmountCents int64
	Currency    string
}

// Succeeded reports whether the gateway settled the transaction.
func (v *VerifyResult) Succeeded() bool {
	return v.Status == "success"
}

type apiResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type initializeResponse struct {
	apiResponse
	Data struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	apiResponse
	Data struct {
		TxRef     string  `json:"tx_ref"`
		Reference string  `json:"reference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
	} `json:"data"`
}

// InitializePayment starts a hosted checkout session and returns the URL
// the learner should be redirected to.
func (c *Client) InitializePayment(ctx context.Context, req InitializeRequest) (string, error) {
	resp, err := c.http.Post(ctx, "/transaction/initialize", req, httpclient.WithBearerToken(c.secretKey))
	if err != nil {
		return "", errors.Wrap(ErrGatewayError, err.Error())
	}

	var out initializeResponse
	if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
		return "", errors.Wrap(ErrGatewayError, err.Error())
	}
	if out.Status != "success" || out.Data.CheckoutURL == "" {
		return "", errors.Wrapf(ErrGatewayError, "initialize rejected: %s", out.Message)
	}

	logger.Info("checkout session initialized",
		zap.String("tx_ref", req.TxRef),
		zap.String("amount", req.Amount))
	return out.Data.CheckoutURL, nil
}

// VerifyTransaction fetches the authoritative state of a transaction.
// Webhook payloads are treated as hints only; this call decides.
func (c *Client) VerifyTransaction(ctx context.Context, txRef string) (*VerifyResult, error) {
	resp, err := c.http.Get(ctx, fmt.Sprintf("/transaction/verify/%s", txRef), httpclient.WithBearerToken(c.secretKey))
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, errors.Wrapf(ErrTransactionNotFound, "tx_ref %s", txRef)
		}
		return nil, errors.Wrap(ErrGatewayError, err.Error())
	}

	var out verifyResponse
	if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
		return nil, errors.Wrap(ErrGatewayError, err.Error())
	}
	if out.Status != "success" {
		return nil, errors.Wrapf(ErrGatewayError, "verify rejected: %s", out.Message)
	}

	return &VerifyResult{
		TxRef:       out.Data.TxRef,
		Reference:   out.Data.Reference,
		Status:      out.Data.Status,
		AmountCents: int64(math.Round(out.Data.Amount * 100)),
		Currency:    out.Data.Currency,
	}, nil
}

// FormatAmount renders an amount in cents as the major-unit decimal
// string the gateway expects, e.g. 24900 -> "249.00".
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
