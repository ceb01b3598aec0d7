package round

// DeliverPreviewInput contains parameters for delivering one prize preview
type DeliverPreviewInput struct {
	// UserID is the recipient
	UserID string

	// PrizeID is the prize bound to the claim action
	PrizeID int64

	// Image is the prize's source asset reference
	Image string
}
