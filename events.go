package chapa

import "time"

// Webhook event payloads delivered by Chapa. These are passive shapes for
// callers that decode webhook bodies themselves; the SDK neither receives nor
// dispatches webhooks.

// TransactionEvent is the webhook body emitted for payment events.
type TransactionEvent struct {
	FirstName     string        `json:"first_name,omitempty"`
	LastName      string        `json:"last_name,omitempty"`
	Email         string        `json:"email,omitempty"`
	Mobile        string        `json:"mobile,omitempty"`
	Currency      Currency      `json:"currency"`
	PaymentMethod string        `json:"payment_method"`
	Amount        Amount        `json:"amount"`
	Charge        Amount        `json:"charge"`
	Event         string        `json:"event"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	Mode          Mode          `json:"mode"`
	TxRef         string        `json:"tx_ref"`
	Reference     string        `json:"reference"`
	Customization Customization `json:"customization"`
	Meta          string        `json:"meta,omitempty"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// TransferEvent is the webhook body emitted for transfer events.
type TransferEvent struct {
	AccountName    string    `json:"account_name"`
	AccountNumber  string    `json:"account_number"`
	BankReference  string    `json:"bank_reference"`
	BankID         int       `json:"bank_id"`
	BankName       string    `json:"bank_name"`
	Amount         Amount    `json:"amount"`
	Currency       Currency  `json:"currency"`
	Charge         Amount    `json:"charge"`
	Event          string    `json:"event"`
	Status         string    `json:"status"`
	Type           string    `json:"type"`
	Reference      string    `json:"reference"`
	ChapaReference string    `json:"chapa_reference"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
