package orchestrator

// AgentInfo is descriptive prose about one agent, interpolated into the
// chat system instruction. The table includes the not-yet-built
// change/comms role; it has no facade, only this description.
type AgentInfo struct {
	Name    string   `json:"name"`
	Desc    string   `json:"description"`
	Tools   []string `json:"tools"`
	Outputs []string `json:"outputs"`
}

// TaskTemplate is a canned multi-agent scenario. Used only as prompt
// content; nothing executes the agent chain programmatically.
type TaskTemplate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Agents      []string `json:"agents"`
	Process     []string `json:"process"`
	Duration    string   `json:"duration"`
	Effort      string   `json:"effort"`
}

// Task registry keys. These four strings are a public contract for
// SolveTask callers.
const (
	TaskLeadGen              = "lead_gen"
	TaskReceptionAutomation  = "reception_automation"
	TaskFullPipeline         = "full_pipeline"
	TaskComplianceAutomation = "compliance_automation"
)

// infoOrder fixes the interpolation order of the agents table.
var infoOrder = []string{
	"data_research", "engagement", "discovery", "synthesis", "project_delivery", "change_comms",
}

// taskOrder fixes the interpolation order of the task registry.
var taskOrder = []string{
	TaskLeadGen, TaskReceptionAutomation, TaskFullPipeline, TaskComplianceAutomation,
}

func loadAgentsInfo() map[string]AgentInfo {
	return map[string]AgentInfo{
		"data_research": {
			Name:    "Data/Research",
			Desc:    "Company enrichment, PII screening, GDPR validation",
			Tools:   []string{"Companies House API", "Clearbit", "OpenAI"},
			Outputs: []string{"enriched profiles", "compliance reports", "contact validation"},
		},
		"engagement": {
			Name:    "Engagement",
			Desc:    "BANT qualification, outreach emails, lead scoring",
			Tools:   []string{"LinkedIn", "SendGrid", "OpenAI"},
			Outputs: []string{"qualified leads", "personalized outreach", "lead scores"},
		},
		"discovery": {
			Name:    "Discovery",
			Desc:    "Strategic questions, process mapping, compliance",
			Tools:   []string{"LinkedIn", "Compliance APIs", "OpenAI GPT-4-turbo"},
			Outputs: []string{"discovery questions", "process maps", "compliance checklists"},
		},
		"synthesis": {
			Name:    "Synthesis",
			Desc:    "ROI modeling, 3-scenario planning, business case",
			Tools:   []string{"Claude Sonnet", "Financial APIs", "OpenAI GPT-4-turbo"},
			Outputs: []string{"ROI models", "business cases", "financial projections"},
		},
		"project_delivery": {
			Name:    "Project/Delivery",
			Desc:    "Timelines, risk assessment, contracts, resource planning",
			Tools:   []string{"DocuSign", "AWS S3", "OpenAI"},
			Outputs: []string{"implementation plans", "risk assessments", "resource schedules"},
		},
		"change_comms": {
			Name:    "Change/Comms",
			Desc:    "Training plans, communication, adoption tracking",
			Tools:   []string{"SendGrid", "OpenAI"},
			Outputs: []string{"training materials", "comms plans", "adoption metrics"},
		},
	}
}

func loadTaskTemplates() map[string]TaskTemplate {
	return map[string]TaskTemplate{
		TaskLeadGen: {
			Title:       "Lead Generation Automation",
			Description: "Automated prospecting and lead qualification",
			Agents:      []string{"data_research", "engagement", "synthesis"},
			Process: []string{
				"Enrich prospect data (research industry, company profile, pain points)",
				"Qualify leads using BANT framework",
				"Calculate ROI per lead",
				"Generate personalized outreach emails",
			},
			Duration: "3-4 weeks",
			Effort:   "Medium",
		},
		TaskReceptionAutomation: {
			Title:       "Reception/Intake Automation",
			Description: "Automated client intake and appointment scheduling",
			Agents:      []string{"discovery", "data_research", "project_delivery"},
			Process: []string{
				"Map current reception workflow and pain points",
				"Identify automation opportunities (intake forms, data capture)",
				"Screen callers for compliance and qualification",
				"Auto-schedule appointments based on availability",
				"Create implementation roadmap",
			},
			Duration: "4-6 weeks",
			Effort:   "High",
		},
		TaskFullPipeline: {
			Title:       "Full Sales Pipeline Automation",
			Description: "End-to-end lead generation through deal closure",
			Agents:      []string{"data_research", "engagement", "discovery", "synthesis", "project_delivery", "change_comms"},
			Process: []string{
				"Research and enrich prospect database",
				"Engage & qualify inbound leads",
				"Run discovery calls with qualifying prospects",
				"Build ROI case and business proposal",
				"Create implementation plan",
				"Plan change management & training",
			},
			Duration: "8-12 weeks",
			Effort:   "High",
		},
		TaskComplianceAutomation: {
			Title:       "Compliance & Risk Screening",
			Description: "Automated compliance checks and risk assessment",
			Agents:      []string{"data_research", "discovery"},
			Process: []string{
				"Screen prospects against compliance databases",
				"Check PII and data protection requirements",
				"Validate regulatory compliance (GDPR, SCA, etc)",
				"Create compliance report and risk assessment",
			},
			Duration: "2-3 weeks",
			Effort:   "Low",
		},
	}
}
