package model

// Person is a resident known to the service. The (FirstName, LastName) pair
// is the identity key; no two stored persons share it.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// HasName reports whether this person carries the given identity key.
func (p Person) HasName(firstName, lastName string) bool {
	return MatchKey(p.FirstName, firstName) && MatchKey(p.LastName, lastName)
}
