package domain

import "time"

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

// ValidApplicationStatus reports whether s is a member of the status enum.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// ApplicantRef is the denormalized applicant subdocument. ID is the owning
// principal's identifier and drives ownership checks.
type ApplicantRef struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// JobApplication is an owned resource: the applicant or an admin may read
// or delete it, nobody else.
type JobApplication struct {
	ID          string            `json:"id" bson:"-"`
	Position    string            `json:"position" bson:"position"`
	Applicant   ApplicantRef      `json:"applicant" bson:"applicant"`
	FullName    string            `json:"fullName" bson:"fullName"`
	Email       string            `json:"email" bson:"email"`
	Phone       string            `json:"phone" bson:"phone"`
	Resume      string            `json:"resume" bson:"resume"`
	CoverLetter string            `json:"coverLetter" bson:"coverLetter"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt" bson:"updatedAt"`
}
