package pricing

import "github.com/saudesim/agenda-service/internal/domain"

// Policy maps an appointment slot to its price. Pure and deterministic:
// slots starting before the evening hour cost the base amount, slots at
// or after it cost the evening amount. Both amounts and the threshold are
// configuration, not literals, so the policy can be swapped without
// touching callers.
type Policy struct {
	basePrice    float64
	eveningPrice float64
	eveningHour  int
}

// NewPolicy creates a pricing policy from configured amounts
func NewPolicy(basePrice, eveningPrice float64, eveningHour int) *Policy {
	return &Policy{
		basePrice:    basePrice,
		eveningPrice: eveningPrice,
		eveningHour:  eveningHour,
	}
}

// PriceFor returns the price for a slot based on its civil start hour
func (p *Policy) PriceFor(slot domain.TimeSlot) float64 {
	if slot.Hour() >= p.eveningHour {
		return p.eveningPrice
	}
	return p.basePrice
}
