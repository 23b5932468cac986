package formatting

import "github.com/Tonii11/aurelius-claim-flow/app/models"

// StatusDisplay holds the presentational attributes of a claim status.
type StatusDisplay struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Class string `json:"class"`
}

// GetStatusDisplay returns label, icon name and badge class for a status.
func GetStatusDisplay(status models.ClaimStatus) StatusDisplay {
	displays := map[models.ClaimStatus]StatusDisplay{
		models.ClaimPending:  {"Pending", "clock", "badge-warning"},
		models.ClaimApproved: {"Approved", "check-circle", "badge-success"},
		models.ClaimRejected: {"Rejected", "x-circle", "badge-destructive"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"Unknown", "help-circle", "badge-muted"}
}
