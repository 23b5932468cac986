package formatting

import "github.com/Tonii11/aurelius-claim-flow/app/models"

// ClaimView is the wire form of a claim. Display attributes are resolved
// server-side so clients never re-derive labels, badge classes or amounts.
type ClaimView struct {
	models.Claim
	StatusDisplay StatusDisplay `json:"status_display"`
	TotalDisplay  string        `json:"total_display"`
}

func NewClaimView(claim models.Claim) ClaimView {
	return ClaimView{
		Claim:         claim,
		StatusDisplay: GetStatusDisplay(claim.Status),
		TotalDisplay:  FormatAmount(claim.TotalAmount),
	}
}

func ClaimViews(claims []models.Claim) []ClaimView {
	views := make([]ClaimView, len(claims))
	for i, claim := range claims {
		views[i] = NewClaimView(claim)
	}
	return views
}
