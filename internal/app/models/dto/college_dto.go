package dto

// CollegeRequest is the body of add_college and of a college update.
// On update collegecode may differ from the path key, which renames the college.
type CollegeRequest struct {
	CollegeCode string `json:"collegecode" binding:"required,notblank"`
	CollegeName string `json:"collegename" binding:"required,notblank"`
}

// CollegeCreatedResponse is returned by add_college
type CollegeCreatedResponse struct {
	Message     string `json:"message" example:"College registered successfully!"`
	CollegeCode string `json:"collegecode" example:"CCS"`
}
