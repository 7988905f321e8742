package crowdfund

// DonationReceipt is the cumulative contribution of one donor to one campaign.
// A refund sets Refunded and leaves Amount untouched.
type DonationReceipt struct {
	Campaign Identifier
	Donor    Identifier
	Amount   uint64
	Refunded bool
}

// Refundable returns the amount a refund would pay out.
func (r *DonationReceipt) Refundable() uint64 {
	if r.Refunded {
		return 0
	}
	return r.Amount
}
