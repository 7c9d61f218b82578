package chapa

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Amount decodes from either a JSON number or a numeric string. Chapa mixes
// the two representations across endpoints.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}

// Customization adjusts how the hosted checkout form is presented.
type Customization struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// PaymentCheckout is returned when a payment is initialized.
type PaymentCheckout struct {
	CheckoutURL string `json:"checkout_url"`
}

// PaymentDetail describes a verified payment transaction.
type PaymentDetail struct {
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `json:"email"`
	Amount        Amount         `json:"amount"`
	Charge        Amount         `json:"charge"`
	Currency      Currency       `json:"currency"`
	Mode          Mode           `json:"mode"`
	Status        string         `json:"status"`
	Method        string         `json:"method"`
	Type          string         `json:"type"`
	TxRef         string         `json:"tx_ref"`
	Reference     string         `json:"reference"`
	Meta          string         `json:"meta,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TransferDetail describes a verified bank transfer.
type TransferDetail struct {
	AccountName         string    `json:"account_name"`
	AccountNumber       string    `json:"account_number"`
	Mobile              string    `json:"mobile,omitempty"`
	Amount              Amount    `json:"amount"`
	Charge              Amount    `json:"charge"`
	Currency            Currency  `json:"currency"`
	Mode                Mode      `json:"mode"`
	Status              Status    `json:"status"`
	BankCode            string    `json:"bank_code"`
	BankName            string    `json:"bank_name"`
	TransferMethod      string    `json:"transfer_method"`
	TxRef               string    `json:"tx_ref"`
	ChapaTransferID     string    `json:"chapa_transfer_id"`
	IPAddress           string    `json:"ip_address,omitempty"`
	Narration           string    `json:"narration,omitempty"`
	CrossPartyReference string    `json:"cross_party_reference,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Subaccount carries the identifier assigned to a newly created split target.
type Subaccount struct {
	SubaccountID string `json:"subaccount_id"`
}

// Balance is one currency's available and ledger balance.
type Balance struct {
	Currency         string `json:"currency"`
	AvailableBalance Amount `json:"available_balance"`
	LedgerBalance    Amount `json:"ledger_balance"`
}

// BulkTransferQueue is the handle for an asynchronously processed transfer
// batch.
type BulkTransferQueue struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BulkTransferEntry is one transfer inside a bulk batch.
type BulkTransferEntry struct {
	AccountName   string  `json:"account_name,omitempty"`
	AccountNumber string  `json:"account_number"`
	Amount        float64 `json:"amount"`
	Reference     string  `json:"reference,omitempty"`
	BankCode      int     `json:"bank_code"`
}
