package payment

import "context"

// Authorizer stands in for a payment gateway. The lifecycle service only
// calls it and branches on the boolean outcome; card-network logic lives
// behind this interface.
type Authorizer interface {
	Authorize(ctx context.Context, cardNumber string, amount float64) (bool, error)
}

// Stub authorizes every payment. Default provider.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (*Stub) Authorize(ctx context.Context, cardNumber string, amount float64) (bool, error) {
	return true, nil
}

var _ Authorizer = (*Stub)(nil)
