package domain

// AppliedDiscount is a (DiscountID, Percent) pair recorded against a
// product. Two applied discounts are equal when their ids are equal; the
// percent plays no part in set membership.
type AppliedDiscount struct {
	id      DiscountID
	percent Percent
}

// NewAppliedDiscount validates a raw discount id and percentage.
func NewAppliedDiscount(id string, percent float64) (AppliedDiscount, error) {
	discountID, err := NewDiscountID(id)
	if err != nil {
		return AppliedDiscount{}, err
	}
	p, err := NewPercent(percent)
	if err != nil {
		return AppliedDiscount{}, err
	}
	return AppliedDiscount{id: discountID, percent: p}, nil
}

// ReconstructAppliedDiscount rebuilds a discount from storage without
// re-validating; rows were validated when written.
func ReconstructAppliedDiscount(id DiscountID, percent Percent) AppliedDiscount {
	return AppliedDiscount{id: id, percent: percent}
}

// ID returns the discount id.
func (d AppliedDiscount) ID() DiscountID { return d.id }

// Percent returns the discount percentage.
func (d AppliedDiscount) Percent() Percent { return d.percent }
