package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// ProviderOrder is the provider-side record an amount is collected
// against; both parties reference it before any money moves.
type ProviderOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway abstracts order creation at the payment provider. Signature
// verification deliberately does NOT go through the SDK: both callback
// paths share the HMAC implementation in signature.go.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway_mock.go -package=mock
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*ProviderOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (g *razorpayGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency, receipt string,
	notes map[string]interface{},
) (*ProviderOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("razorpay order response missing id: %v", body)
	}

	return &ProviderOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
	}, nil
}
