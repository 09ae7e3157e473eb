package services

// PriceBreakdown is the result of a price computation. All amounts are
// integer cents; the discount is floored so the learner never pays a
// fraction of a cent less than the advertised rate.
type PriceBreakdown struct {
	Months          int   `json:"months"`
	MonthlyCents    int64 `json:"monthly_cents"`
	TotalCents      int64 `json:"total_cents"`
	DiscountPercent int   `json:"discount_percent"`
	DiscountCents   int64 `json:"discount_cents"`
	FinalCents      int64 `json:"final_cents"`
}

// PricingCalculator computes purchase totals from a monthly rate and a
// duration discount table.
type PricingCalculator struct {
	discounts map[int]int
}

// NewPricingCalculator creates a calculator with the given duration
// discount table, keyed by month count with whole-percent values.
func NewPricingCalculator(discounts map[int]int) *PricingCalculator {
	return &PricingCalculator{discounts: discounts}
}

// ComputePrice computes the total for months of service at the given
// monthly rate. Durations outside the discount table fall back to a
// single undiscounted month, as do out-of-range discount values.
func (pc *PricingCalculator) ComputePrice(monthlyRateCents int64, months int) PriceBreakdown {
	percent, ok := pc.discounts[months]
	if !ok {
		months = 1
		percent = 0
	}
	if percent < 0 || percent > 100 {
		percent = 0
	}

	total := monthlyRateCents * int64(months)
	discount := total * int64(percent) / 100
	return PriceBreakdown{
		Months:          months,
		MonthlyCents:    monthlyRateCents,
		TotalCents:      total,
		DiscountPercent: percent,
		DiscountCents:   discount,
		FinalCents:      total - discount,
	}
}

// ComputeUpgradePrice charges the rate difference between two tiers for
// the months remaining in the current period. No duration discount
// applies to upgrade charges.
func (pc *PricingCalculator) ComputeUpgradePrice(currentMonthlyCents, targetMonthlyCents int64, remainingMonths int) PriceBreakdown {
	if remainingMonths < 1 {
		remainingMonths = 1
	}
	diff := targetMonthlyCents - currentMonthlyCents
	if diff < 0 {
		diff = 0
	}
	total := diff * int64(remainingMonths)
	return PriceBreakdown{
		Months:       remainingMonths,
		MonthlyCents: diff,
		TotalCents:   total,
		FinalCents:   total,
	}
}
