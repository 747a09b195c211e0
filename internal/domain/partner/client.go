package partner

import (
	"github.com/backoffice/backend/internal/domain/shared"
)

// Client represents a customer of the business. Orders reference clients;
// the order engine only needs an existence check, the remaining fields are
// maintained by the back-office outside the transactional core.
type Client struct {
	shared.BaseAggregateRoot
	Name           string
	Street         string
	Municipality   string
	Province       string
	Locality       string
	IsMSME         bool
	PaymentAccount string
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client
func NewClient(name, street, municipality, province string) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Street:            street,
		Municipality:      municipality,
		Province:          province,
	}, nil
}
