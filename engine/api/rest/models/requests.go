package models

// Request bodies of the mutating endpoints. Amounts, durations and times are
// decimal strings so that 64 bit values survive JSON clients.

type InitializeBody struct {
	Authority            string `json:"authority,omitempty"`
	DisputeWindowSeconds string `json:"dispute_window_seconds"`
}

type UpdateAuthorityBody struct {
	Authority string `json:"authority"`
}

type UpdateDisputeWindowBody struct {
	DisputeWindowSeconds string `json:"dispute_window_seconds"`
}

type MilestoneBody struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type CreateCampaignBody struct {
	DurationSeconds string          `json:"duration_seconds"`
	Milestones      []MilestoneBody `json:"milestones"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ImageUrl        string          `json:"image_url"`
}

type AmountBody struct {
	Amount string `json:"amount"`
}

type LockBody struct {
	Locked *bool `json:"locked"`
}
