// Package prompts is the catalog of prompt templates and system
// instructions. Templates are data; nothing branches on their content.
package prompts

// System instructions, one per operation domain framing.
const (
	ResearchSystem   = "You are a company research specialist. Provide accurate company information."
	ComplianceSystem = "You are a GDPR compliance specialist."
	SalesSystem      = "You are a sales qualification specialist."
	OutreachSystem   = "You are a B2B sales professional."
	ConsultantSystem = "You are an expert business consultant."
	FinanceSystem    = "You are a financial analyst."
	ProjectSystem    = "You are a project management expert."
)

var (
	EnrichCompany = `Provide a concise company profile for {{.Company}}. Include:
1. Industry and sector
2. Estimated company size
3. Key business focus
4. Potential pain points

Be realistic and factual.`

	ScreenPII = `Analyze this text for PII (personally identifiable information):

{{.Text}}

List any PII found and rate GDPR compliance risk (low/medium/high).`

	QualifyLead = `Qualify this lead using BANT framework:

Company: {{.Company}}
Budget: {{.Budget}}
Timeline: {{.Timeline}}

Provide:
1. BANT score (0-10)
2. Qualified status (Yes/No/Maybe)
3. Key risks or opportunities
4. Recommendation`

	GenerateEmail = `Write a professional outreach email to {{.Contact}} at {{.Company}} about:

"We help mid-market companies implement AI-driven consulting solutions that reduce costs by 70%"

Make it personalized but concise (200 words max).`

	GenerateQuestions = `Generate 10 strategic discovery questions for {{.Context}}

Focus on:
1. Current processes and pain points
2. Technology stack
3. Team structure
4. Budget constraints
5. Success metrics

Format as numbered list with brief context for each.`

	CalculateROI = `Calculate ROI for a {{.Investment}} consulting engagement.

Assumptions:
- Client annual revenue: {{.Revenue}}
- Implementation period: 6 months
- Benefits realization: 12 months

Provide 3 scenarios:
1. Conservative (20% efficiency gain)
2. Recommended (35% efficiency gain)
3. Aggressive (50% efficiency gain)

For each, show:
- Annual savings
- Payback period
- 3-year ROI %
- Key assumptions`

	CreateProjectPlan = `Create a project delivery plan for: {{.Project}}

Scope: {{.Scope}}

Provide:
1. 5-phase breakdown
2. Timeline (weeks)
3. Key deliverables
4. Resource requirements
5. Risk assessment
6. Success criteria

Format as structured plan.`
)
