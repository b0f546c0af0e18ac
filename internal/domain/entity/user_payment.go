package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// PaymentType is the kind of payment instrument a user registers.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypePix        PaymentType = "pix"
	PaymentTypeBoleto     PaymentType = "boleto"
)

// IsValid checks if the PaymentType is a valid value.
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypePix, PaymentTypeBoleto:
		return true
	default:
		return false
	}
}

// PaymentProvider is the network or institution behind a payment instrument.
type PaymentProvider string

const (
	PaymentProviderVisa       PaymentProvider = "visa"
	PaymentProviderMastercard PaymentProvider = "mastercard"
	PaymentProviderAmex       PaymentProvider = "amex"
	PaymentProviderElo        PaymentProvider = "elo"
	PaymentProviderHipercard  PaymentProvider = "hipercard"
)

// IsValid checks if the PaymentProvider is a valid value.
func (p PaymentProvider) IsValid() bool {
	switch p {
	case PaymentProviderVisa, PaymentProviderMastercard, PaymentProviderAmex, PaymentProviderElo, PaymentProviderHipercard:
		return true
	default:
		return false
	}
}

// UserPayment is a payment instrument registered by a user and referenced by
// their orders.
type UserPayment struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	PaymentType   PaymentType     `json:"paymentType"`
	Provider      PaymentProvider `json:"provider"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (p *UserPayment) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("userId is required")
	}
	if p.AccountNumber == "" {
		return errors.New("accountNumber is required")
	}
	if !p.PaymentType.IsValid() {
		return errors.Errorf("paymentType %q is not a known payment type", p.PaymentType)
	}
	if !p.Provider.IsValid() {
		return errors.Errorf("provider %q is not a known payment provider", p.Provider)
	}

	return nil
}
