package domain

// Itinerary references one or two inventory units. The fields are
// unexported so a return leg can only appear together with an outbound
// one, via the constructors.
type Itinerary struct {
	outbound string
	inbound  string
}

func OneWay(unitID string) Itinerary {
	return Itinerary{outbound: unitID}
}

func RoundTrip(outboundID, returnID string) Itinerary {
	return Itinerary{outbound: outboundID, inbound: returnID}
}

func (i Itinerary) Outbound() string { return i.outbound }

func (i Itinerary) Return() (string, bool) {
	return i.inbound, i.inbound != ""
}

func (i Itinerary) IsRoundTrip() bool { return i.inbound != "" }

// UnitIDs lists the referenced units in travel order.
func (i Itinerary) UnitIDs() []string {
	if i.inbound == "" {
		return []string{i.outbound}
	}
	return []string{i.outbound, i.inbound}
}
