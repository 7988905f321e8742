package models

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

type Receipt struct {
	CampaignId string `json:"campaign_id"`
	Donor      string `json:"donor"`
	Amount     string `json:"amount"`
	Refunded   bool   `json:"refunded"`
}

func (r *Receipt) Build(receipt *crowdfund.DonationReceipt) {
	r.CampaignId = receipt.Campaign.String()
	r.Donor = receipt.Donor.String()
	r.Amount = util.FromUint64(receipt.Amount)
	r.Refunded = receipt.Refunded
}

type Receipts []Receipt

func (r *Receipts) Build(receipts []*crowdfund.DonationReceipt) {
	built := make([]Receipt, len(receipts))
	for i, receipt := range receipts {
		built[i].Build(receipt)
	}
	*r = built
}

// Payout describes value moved out of a campaign vault by a release or a
// refund.
type Payout struct {
	CampaignId string `json:"campaign_id"`
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"`
}

func (p *Payout) Build(payout *custody.Payout) {
	p.CampaignId = payout.Campaign.String()
	p.Recipient = payout.Recipient.String()
	p.Amount = util.FromUint64(payout.Amount)
}
