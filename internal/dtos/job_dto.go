package dtos

// JobCreationRequest is the employer "post a job" form payload, forwarded to
// POST /jobs on the remote API.
type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	JobType     string `json:"jobType" binding:"required"`
	Category    string `json:"category" binding:"required"`

	// Optional fields
	Salary              string   `json:"salary"`
	Skills              []string `json:"skills"`
	ApplicationDeadline string   `json:"applicationDeadline"`
}

// JobUpdateRequest mirrors JobCreationRequest but every field is optional;
// the remote API applies only what is present.
type JobUpdateRequest struct {
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
	Location            string   `json:"location,omitempty"`
	JobType             string   `json:"jobType,omitempty"`
	Category            string   `json:"category,omitempty"`
	Salary              string   `json:"salary,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	IsActive            *bool    `json:"isActive,omitempty"`
}

// ApplicationRequest is a seeker's apply payload.
type ApplicationRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

// StatusUpdateRequest moves an application through the employer's pipeline.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
