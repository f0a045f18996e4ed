package model

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	StatusCreated    RequestStatus = "created"
	StatusAssigned   RequestStatus = "assigned"
	StatusArriving   RequestStatus = "arriving"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// Request is a snapshot of a request record as seen by the change feed.
type Request struct {
	UserID        string        `json:"userId"`                  // beneficiary who created the request
	Status        RequestStatus `json:"status"`                  // current lifecycle state
	VolunteerID   string        `json:"volunteerId,omitempty"`   // set once a volunteer accepts the request
	VolunteerName string        `json:"volunteerName,omitempty"` // denormalised volunteer name written by the app
}
