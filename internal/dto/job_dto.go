package dto

type JobSearchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// JobListing is an externally-sourced posting. It is returned to the
// client as-is and never persisted.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Logo        string `json:"logo,omitempty"`
	Date        string `json:"date,omitempty"`
}

type JobMatchRequest struct {
	JobDescription string `json:"jobDescription"`
}

type MatchResult struct {
	MatchPercentage int      `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Analysis        string   `json:"analysis"`
}

type GenerateRequest struct {
	JobDescription string `json:"jobDescription"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
}

// Materials carries the generated application texts as markdown. Saving
// them is a separate, independent call.
type Materials struct {
	CustomCv    string `json:"customCv"`
	CoverLetter string `json:"coverLetter"`
}

type SaveJobRequest struct {
	JobTitle        string  `json:"jobTitle"`
	CompanyName     string  `json:"companyName"`
	MatchPercentage *int    `json:"matchPercentage"`
	JobURL          *string `json:"jobUrl"`
	Description     *string `json:"description"`
	CustomCvURL     *string `json:"customCvUrl"`
	CoverLetterURL  *string `json:"coverLetterUrl"`
}
