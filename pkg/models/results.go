package models

// Result records returned by the agent facades. Every record echoes its
// semantic inputs and carries the model identifier that produced it; the
// text fields hold either the completion or a displayable error string.

type CompanyProfile struct {
	CompanyName string `json:"company_name"`
	Profile     string `json:"profile"`
	ModelUsed   string `json:"model_used"`
	Timestamp   string `json:"timestamp"`
}

type PIIAnalysis struct {
	TextSample string `json:"text_sample"`
	Analysis   string `json:"analysis"`
	ModelUsed  string `json:"model_used"`
}

type LeadQualification struct {
	Company      string `json:"company"`
	BANTAnalysis string `json:"bant_analysis"`
	ModelUsed    string `json:"model_used"`
}

type OutreachEmail struct {
	Recipient string `json:"recipient"`
	Email     string `json:"email"`
	ModelUsed string `json:"model_used"`
}

type DiscoveryQuestions struct {
	Context   string `json:"context"`
	Questions string `json:"questions"`
	ModelUsed string `json:"model_used"`
}

type ROIAnalysis struct {
	Investment  string `json:"investment"`
	ROIAnalysis string `json:"roi_analysis"`
	ModelUsed   string `json:"model_used"`
}

type ProjectPlan struct {
	Project   string `json:"project"`
	Plan      string `json:"plan"`
	ModelUsed string `json:"model_used"`
}
