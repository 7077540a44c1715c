package domain

var (
	MessageSuccessTrackVisit = "visit tracked successfully"
	MessageFailedTrackVisit  = "failed to track visit"
)

type TrackVisitRequest struct {
	URL       string `json:"url" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}
