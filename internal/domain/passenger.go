package domain

import "strings"

type Passenger struct {
	ID         int64
	FirstName  string
	LastName   string
	MiddleName string
	Email      string
	Phone      string
}

// DisplayName joins the non-empty name parts for confirmation views.
func (p Passenger) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
