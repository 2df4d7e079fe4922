package types

import "github.com/formsight/backend/internal/model"

// CreateSessionRequest opens a new analysis session for one sport.
type CreateSessionRequest struct {
	SportID string `json:"sportId" validate:"required,lowercase,lte=32" example:"badminton"`
}

type CreateSessionResponse struct {
	SessionID string             `json:"sessionId"`
	Sport     model.Sport        `json:"sport"`
	State     model.SessionState `json:"state"`
}

// LandmarkPoint is one landmark as submitted by the pose source.
type LandmarkPoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility" validate:"gte=0,lte=1"`
}

// IngestFrameRequest carries one sampled frame. An absent or empty
// landmarks array is the explicit "no person detected" signal; otherwise
// the full topology must be present.
type IngestFrameRequest struct {
	Seq       int64           `json:"seq" validate:"gte=0"`
	Timestamp float64         `json:"timestamp" validate:"gte=0"`
	Landmarks []LandmarkPoint `json:"landmarks" validate:"omitempty,len=33,dive"`
}

// Frame converts the request into the engine's frame value.
func (r *IngestFrameRequest) Frame() *model.Frame {
	landmarks := make([]model.Landmark, len(r.Landmarks))
	for i, p := range r.Landmarks {
		landmarks[i] = model.Landmark{X: p.X, Y: p.Y, Z: p.Z, Visibility: p.Visibility}
	}
	return &model.Frame{
		Seq:       r.Seq,
		Timestamp: r.Timestamp,
		Landmarks: landmarks,
	}
}

// IngestFrameResponse is the per-frame output forwarded to live clients.
type IngestFrameResponse struct {
	Breakdown *model.ScoreBreakdown `json:"breakdown"`
	Stats     *model.SessionStats   `json:"stats"`
}

type SessionStateResponse struct {
	SessionID string             `json:"sessionId"`
	State     model.SessionState `json:"state"`
}

// SportListEntry is one supported sport in the registry listing.
type SportListEntry struct {
	ID         model.Sport `json:"id"`
	Name       string      `json:"name"`
	Cyclic     bool        `json:"cyclic"`
	JointCount int         `json:"jointCount"`
}

type SportListResponse struct {
	Sports []SportListEntry `json:"sports"`
}
