package chapa

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/json-iterator/go"
)

// PaymentOptions are the optional fields accepted by InitPayment. Zero values
// are treated as absent and never emitted on the wire; Chapa distinguishes an
// unset field from an explicit null for some of them.
type PaymentOptions struct {
	Currency      Currency
	FirstName     string
	LastName      string
	PhoneNumber   string
	Email         string
	CallbackURL   string
	ReturnURL     string
	Customization *Customization
	SubaccountID  string
	TxRef         string
	Meta          map[string]any
}

func (o *PaymentOptions) apply(payload map[string]any) {
	if o == nil {
		return
	}
	if o.Currency != "" {
		payload["currency"] = o.Currency
	}
	if o.FirstName != "" {
		payload["first_name"] = o.FirstName
	}
	if o.LastName != "" {
		payload["last_name"] = o.LastName
	}
	if o.PhoneNumber != "" {
		payload["phone_number"] = o.PhoneNumber
	}
	if o.Email != "" {
		payload["email"] = o.Email
	}
	if o.CallbackURL != "" {
		payload["callback_url"] = o.CallbackURL
	}
	if o.ReturnURL != "" {
		payload["return_url"] = o.ReturnURL
	}
	if o.TxRef != "" {
		payload["tx_ref"] = o.TxRef
	}
	if o.Customization != nil {
		payload["customization"] = o.Customization
	}
	if o.SubaccountID != "" {
		payload["subaccount_id"] = o.SubaccountID
	}
	if len(o.Meta) > 0 {
		payload["meta"] = o.Meta
	}
}

// InitPayment initializes a payment and returns the hosted checkout URL.
//
// The amount wires as a string here, while the transfer and swap endpoints
// expect a JSON number. The upstream API does not accept the two forms
// interchangeably.
func (c *Client) InitPayment(ctx context.Context, amount float64, opts *PaymentOptions) (*PaymentCheckout, error) {
	payload := map[string]any{"amount": formatAmount(amount)}
	opts.apply(payload)

	env, err := c.call(ctx, http.MethodPost, epTransactionInitialize, requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if err := env.requireData("checkout_url"); err != nil {
		return nil, err
	}

	var out PaymentCheckout
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return &out, nil
}

// paymentDetailFields must all be present on a verified payment.
var paymentDetailFields = []string{
	"first_name", "last_name", "email", "amount", "charge", "currency",
	"mode", "status", "method", "type", "tx_ref", "reference",
	"created_at", "updated_at",
}

// VerifyTransaction fetches the detail of a payment by its reference.
func (c *Client) VerifyTransaction(ctx context.Context, txRef string) (*PaymentDetail, error) {
	if txRef == "" {
		return nil, &ConfigError{Reason: "tx_ref is required"}
	}

	env, err := c.call(ctx, http.MethodGet, epTransactionVerify+"/"+txRef, requestOptions{})
	if err != nil {
		return nil, err
	}
	if err := env.requireData(paymentDetailFields...); err != nil {
		return nil, err
	}

	var out PaymentDetail
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Response: env.raw, Err: err}
	}
	return &out, nil
}

// ListOptions control pagination for the listing endpoints.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o *ListOptions) query() url.Values {
	page, perPage := 1, 10
	if o != nil {
		if o.Page > 0 {
			page = o.Page
		}
		if o.PerPage > 0 {
			perPage = o.PerPage
		}
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

// GetTransactions returns one page of the transaction listing as the raw
// mapping Chapa replies with.
func (c *Client) GetTransactions(ctx context.Context, opts *ListOptions) (map[string]any, error) {
	env, err := c.call(ctx, http.MethodGet, epTransactions, requestOptions{query: opts.query()})
	if err != nil {
		return nil, err
	}
	return env.dataMap()
}

// GetTransactionLog returns the ordered event log recorded for a transaction.
func (c *Client) GetTransactionLog(ctx context.Context, txRef string) ([]map[string]any, error) {
	if txRef == "" {
		return nil, &ConfigError{Reason: "tx_ref is required"}
	}

	env, err := c.call(ctx, http.MethodGet, epEvents+"/"+txRef, requestOptions{})
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if env.hasData() {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, &DecodeError{Response: env.raw, Err: err}
		}
	}
	return out, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
