package entity

// Lecture as served by the attendance API. Timestamps stay as the wire
// strings, formatting happens at render time.
type Lecture struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	CourseCode  string `json:"courseCode"`
	Description string `json:"description,omitempty"`
	ScheduledAt string `json:"scheduledAt"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// LectureInput is the create/update payload.
type LectureInput struct {
	Title       string `json:"title"`
	CourseCode  string `json:"courseCode"`
	Description string `json:"description,omitempty"`
	ScheduledAt string `json:"scheduledAt"`
}
