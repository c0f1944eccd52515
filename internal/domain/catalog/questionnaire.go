package catalog

import "isms-lab/internal/domain/models"

// Question ids referenced by profile inference. Kept as named
// constants so the inference rules and the questionnaire cannot
// drift apart silently.
const (
	QInfrastructure         = 22
	QInfrastructureFallback = 25
	QCriticalSystems        = 21
	QCriticalSystemsAlt     = 24
	QDataTypes              = 23
	QMobileManagement       = 30
	QEmployeeCount          = 37
	QRemoteWork             = 46
	QThirdParty             = 12
)

// scopingSections is the fixed questionnaire in presentation order.
// Question ids are stable; id 47 is intentionally absent.
var scopingSections = []models.QuestionSection{
	{
		Name: "1. Organization Overview",
		Questions: []models.ScopingQuestion{
			{ID: 1, Question: "Describe your core business model: What products or services does your organization offer, and who are your primary customers?"},
			{ID: 2, Question: "What are your most critical business processes, services, and functions? (e.g., product development, customer support, data processing)"},
			{ID: 3, Question: "How is your organization structured? Include key departments, teams, leadership roles, and geographical distribution."},
			{ID: 4, Question: "Is your organization part of a parent company or a larger group? If yes, describe the relationship and any shared services or dependencies."},
			{ID: 5, Question: "Describe your core business model, products, and primary customer segments."},
			{ID: 6, Question: "What are your most critical business processes and services? (e.g., product development, customer onboarding, data analytics, customer support)"},
			{ID: 7, Question: "How is the organization structured? Include leadership, departments, and geographical locations."},
			{ID: 8, Question: "Is the organization part of a parent group or subsidiary? Describe inter-company dependencies."},
			{ID: 9, Question: "What are the key business objectives or strategic priorities for the next 12 months?"},
		},
	},
	{
		Name: "2. Scope Definition for ISO 27001",
		Questions: []models.ScopingQuestion{
			{ID: 10, Question: "Which specific departments, locations, systems, or business units will be included in the ISO 27001 certification scope?"},
			{ID: 11, Question: "Are there any parts of the organization you plan to exclude from the scope? Please explain the rationale for such exclusion."},
			{ID: 12, Question: "Do you work with third-party vendors, contractors, or partners that are integral to your operations? Describe their role and interaction with your systems."},
			{ID: 13, Question: "Do you operate in multiple jurisdictions or regions? Highlight any region-specific challenges or regulatory requirements."},
			{ID: 14, Question: "Do you operate across multiple regions or regulatory environments? List data protection and compliance challenges."},
			{ID: 15, Question: "What percentage of your operations are outsourced (e.g., cloud hosting, payroll, HR, IT)?"},
		},
	},
	{
		Name: "3. Legal, Regulatory, and Contractual Requirements",
		Questions: []models.ScopingQuestion{
			{ID: 16, Question: "What industry-specific or regional regulations do you need to comply with? (e.g., GDPR, HIPAA, CCPA, PCI-DSS)"},
			{ID: 17, Question: "Do any client contracts include security or compliance clauses? If yes, describe the key requirements and obligations."},
			{ID: 18, Question: "Are there industry-specific compliance requirements (e.g., BFSI, HealthTech, GovTech)?"},
			{ID: 19, Question: "How is compliance tracked and reported internally?"},
			{ID: 20, Question: "Are you subject to any data residency or localization requirements?"},
		},
	},
	{
		Name: "4. Technology & Information Assets",
		Questions: []models.ScopingQuestion{
			{ID: 21, Question: "List your key IT systems, platforms, and business-critical technologies. (e.g., CRM, ERP, Cloud Platforms, Code Repositories, DevOps Tooling)"},
			{ID: 22, Question: "Describe your infrastructure architecture: Is it on-premises, cloud-based, hybrid, or distributed?"},
			{ID: 23, Question: "What types of sensitive data do you handle? (e.g., PII, PHI, financial data, trade secrets, IP)"},
			{ID: 24, Question: "List all key IT systems, platforms, and applications in use (e.g., CRM, ERP, DevOps tools, repositories)."},
			{ID: 25, Question: "Describe your IT architecture: On-premise, cloud (AWS, Azure, GCP), or hybrid?"},
			{ID: 26, Question: "Do you use Infrastructure-as-Code (IaC) or CI/CD pipelines for deployments?"},
			{ID: 27, Question: "How do you secure your multi-cloud environments (e.g., centralized IAM, CSPM, encryption)?"},
			{ID: 28, Question: "Is there a formal patch management and vulnerability management process?"},
			{ID: 29, Question: "Are network zones segmented (internal, DMZ, production, testing)?"},
			{ID: 30, Question: "What is your approach for mobile device management (MDM) and endpoint protection?"},
			{ID: 31, Question: "Are encryption standards (AES-256, TLS 1.2/1.3) enforced consistently?"},
			{ID: 32, Question: "Is data backed up and tested regularly? Describe frequency and tools used."},
			{ID: 33, Question: "Do you maintain an asset inventory covering hardware, software, and virtual machines?"},
		},
	},
	{
		Name: "5. Existing Security Controls",
		Questions: []models.ScopingQuestion{
			{ID: 34, Question: "Do you currently have an information security management framework or policies in place? If so, please share them with us."},
			{ID: 35, Question: "Are you aligned with any other recognized standards or certifications? (e.g., SOC 2, NIST, ISO 9001, CIS Controls)"},
			{ID: 36, Question: "What security tools or technologies are currently deployed? (e.g., SIEM, firewalls, antivirus, endpoint protection, DLP)"},
		},
	},
	{
		Name: "6. People Control",
		Questions: []models.ScopingQuestion{
			{ID: 37, Question: "What is the current total employee strength, and how many are permanent, contractual, or third-party resources?"},
			{ID: 38, Question: "Are user access rights assigned strictly based on job roles and approved by authorized personnel?"},
			{ID: 39, Question: "Is there a defined and enforced process to disable access immediately after an employee's resignation or termination?"},
			{ID: 40, Question: "Does the onboarding process include communication of information security responsibilities and acceptable use of company assets?"},
			{ID: 41, Question: "Is there a documented exit checklist ensuring return of assets, deactivation of access, and clearance from all departments?"},
			{ID: 42, Question: "Are vendors, consultants, or interns given system or data access only after management approval and signing of required agreements?"},
			{ID: 43, Question: "Are pre-employment background checks conducted for all employees and third-party staff before onboarding?"},
		},
	},
	{
		Name: "7. Physical Locations and Workforce",
		Questions: []models.ScopingQuestion{
			{ID: 44, Question: "Which office locations, data centers, or co-location sites are included in the scope?"},
			{ID: 45, Question: "How is access managed at these physical sites? Describe badge access, visitor controls, etc."},
			{ID: 46, Question: "Do you have remote or hybrid employees/workers? How is their access to company systems secured and monitored?"},
		},
	},
	{
		Name: "8. Risk Context",
		Questions: []models.ScopingQuestion{
			{ID: 48, Question: "What are the key cybersecurity or information security threats your organization has faced in the past 12-24 months?"},
			{ID: 49, Question: "Have you conducted formal risk assessments or third-party audits? Provide details on methodology and frequency."},
			{ID: 50, Question: "What are your top 3 information security concerns or vulnerabilities today?"},
		},
	},
	{
		Name: "9. Stakeholders and Governance",
		Questions: []models.ScopingQuestion{
			{ID: 51, Question: "Who are the key internal and external stakeholders responsible for or impacted by information security?"},
			{ID: 52, Question: "How many individuals are currently involved in IT, cybersecurity, and compliance? Please list roles and reporting lines if possible."},
		},
	},
	{
		Name: "10. ISO 27001 Project Goals & Timeline",
		Questions: []models.ScopingQuestion{
			{ID: 53, Question: "What are your primary drivers for pursuing ISO 27001 certification? (e.g., customer demand, competitive advantage, internal risk reduction, IPO Readiness)"},
			{ID: 54, Question: "What is your target date for achieving certification? Include any interim milestones if applicable."},
			{ID: 55, Question: "Have you assigned an internal team or sponsor to lead this initiative? Include names and roles if known."},
		},
	},
	{
		Name: "11. Interfaces & Dependencies",
		Questions: []models.ScopingQuestion{
			{ID: 56, Question: "List all key external systems, APIs, and third-party services that interact with your environment."},
			{ID: 57, Question: "How is sensitive data shared with third parties or clients? Include methods, controls, and encryption practices."},
		},
	},
	{
		Name: "12. Cloud Environment",
		Questions: []models.ScopingQuestion{
			{ID: 58, Question: "Which cloud service providers (CSPs) are in use (AWS, Azure, GCP, DigitalOcean, etc.)?"},
			{ID: 59, Question: "How are access keys, API credentials, and secrets stored and rotated (Vault, KMS)?"},
			{ID: 60, Question: "Is logging and monitoring enabled across cloud and on-premise systems (SIEM, CloudWatch, Sentinel)?"},
			{ID: 61, Question: "Are configurations benchmarked against CIS or NIST guidelines?"},
			{ID: 62, Question: "Do you maintain separate accounts or tenants for production and development environments?"},
			{ID: 63, Question: "How is cloud cost and usage monitored for anomalies (guardrails, budget alerts)?"},
			{ID: 64, Question: "Are shared responsibility model obligations understood and documented for each CSP?"},
			{ID: 65, Question: "How is on-prem infrastructure secured (firewalls, patching, endpoint protection)?"},
			{ID: 66, Question: "Are VPNs or private connections used for secure cloud access?"},
			{ID: 67, Question: "Are data flows between cloud and on-prem systems encrypted and logged?"},
		},
	},
	{
		Name: "13. Exclusions",
		Questions: []models.ScopingQuestion{
			{ID: 68, Question: "Are there any services, locations, or systems that will not be covered by the ISMS?"},
		},
	},
}

// Sections returns the questionnaire sections in presentation order.
func Sections() []models.QuestionSection {
	return scopingSections
}

// TotalQuestions returns the number of questions in the questionnaire.
func TotalQuestions() int {
	total := 0
	for _, s := range scopingSections {
		total += len(s.Questions)
	}
	return total
}

// FindQuestion looks up a scoping question by id.
func FindQuestion(id int) (models.ScopingQuestion, bool) {
	for _, s := range scopingSections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return models.ScopingQuestion{}, false
}
