package entity

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceMark is the payload for marking a single student in a lecture.
type AttendanceMark struct {
	LectureID string `json:"lectureId"`
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

// AttendanceRecord is one row of a per-student report, ordered by the server.
type AttendanceRecord struct {
	Lecture struct {
		Title       string `json:"title"`
		CourseCode  string `json:"courseCode"`
		ScheduledAt string `json:"scheduledAt"`
	} `json:"lecture"`
	Status string `json:"status"`
}
