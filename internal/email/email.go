package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightreservation/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send email to %s about %s for reservation %d on flight %d\n", event.PassengerEmail, event.Type, event.ReservationID, event.FlightID)
	return nil
}
