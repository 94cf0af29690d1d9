package payment

import (
	"context"
	"math"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseGateway charges through the Omise API. The card argument must be a
// card token (tokn_...) minted client-side; raw PANs never reach the server
// with this provider.
type OmiseGateway struct {
	client   *omise.Client
	currency string
}

func NewOmiseGateway(publicKey, secretKey, currency string) (*OmiseGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	return &OmiseGateway{client: client, currency: currency}, nil
}

func (g *OmiseGateway) Authorize(ctx context.Context, cardToken string, amount float64) (bool, error) {
	charge := &omise.Charge{}
	err := g.client.Do(charge, &operations.CreateCharge{
		Amount:   int64(math.Round(amount * 100)),
		Currency: g.currency,
		Card:     cardToken,
	})
	if err != nil {
		return false, err
	}
	return charge.Paid, nil
}

var _ Authorizer = (*OmiseGateway)(nil)
