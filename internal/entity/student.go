package entity

type Student struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	MatricNo  string `json:"matricNo"`
	Course    string `json:"course,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// StudentInput is the registration payload. The API names the matriculation
// number "studentId" on the way in and "matricNo" on the way out.
type StudentInput struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Course    string `json:"course"`
}
