package domain

// Party identifies one of the two fixed participants sharing expenses.
// The pair is a constant of the domain; there is no lifecycle around it.
type Party string

const (
	PartyA Party = "A"
	PartyB Party = "B"
)

// Parties returns both participants in canonical order.
func Parties() [2]Party {
	return [2]Party{PartyA, PartyB}
}

// Valid reports whether p names one of the two participants.
func (p Party) Valid() bool {
	return p == PartyA || p == PartyB
}

// Other returns the counterpart of p. Callers must pass a valid party.
func (p Party) Other() Party {
	if p == PartyA {
		return PartyB
	}
	return PartyA
}
