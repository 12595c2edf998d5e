package models

import "time"

// User roles as the backend reports them in the `userType` field.
const (
	RoleStudent  = "student"
	RoleEmployer = "employer"
)

// User is the cached identity of the signed-in account.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Company is the employer reference embedded in a Job.
type Company struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Job is one listing as served by the remote API. Listings are read-only on
// this side: a fetched collection is replaced wholesale, never patched.
//
// Salary is free-form text (e.g. "25,000 - 30,000 VNĐ/giờ"); see
// listing.ExtractSalary for the numeric best-effort reading of it.
type Job struct {
	ID                  string     `json:"_id"`
	Title               string     `json:"title"`
	Company             Company    `json:"company"`
	Location            string     `json:"location"`
	Salary              string     `json:"salary"`
	JobType             string     `json:"jobType"`
	Category            string     `json:"category"`
	Description         string     `json:"description"`
	Skills              []string   `json:"skills,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	IsFeatured          bool       `json:"isFeatured"`
	IsActive            bool       `json:"isActive"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
}

// Application is a seeker's submission against a Job.
type Application struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"jobId"`
	Job         *Job      `json:"job,omitempty"`
	Applicant   *User     `json:"applicant,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApplicationStatistics is the employer dashboard summary.
type ApplicationStatistics struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
