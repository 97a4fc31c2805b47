package dto

// ProfileUpdateRequest is a partial patch: nil fields keep their stored
// value, set fields overwrite it (last write wins per field).
type ProfileUpdateRequest struct {
	CvFileURL       *string  `json:"cvFileUrl"`
	LinkedinURL     *string  `json:"linkedinUrl"`
	ParsedSkills    []string `json:"parsedSkills"`
	ExperienceLevel *string  `json:"experienceLevel"`
	TargetLocation  *string  `json:"targetLocation"`
}

type CvUploadResponse struct {
	CvFileURL string `json:"cvFileUrl"`
}
