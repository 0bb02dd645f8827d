package entities

// Condition adjusts one attribute of the character it is active on
type Condition struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	TargetAttribute string   `json:"targetAttribute" yaml:"targetAttribute"`
	Polarity        Polarity `json:"polarity" yaml:"polarity"`
	Amount          float64  `json:"amount" yaml:"amount"`
}

// SignedAmount is the amount with HINDER negated.
// Unknown polarities contribute nothing.
func (c *Condition) SignedAmount() float64 {
	switch c.Polarity {
	case PolarityHelp:
		return c.Amount
	case PolarityHinder:
		return -c.Amount
	default:
		return 0
	}
}

// Affects reports whether the condition targets the given attribute
func (c *Condition) Affects(attribute string) bool {
	return CanonicalAttribute(c.TargetAttribute) == CanonicalAttribute(attribute)
}
