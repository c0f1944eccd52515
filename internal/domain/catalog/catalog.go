// Package catalog holds the static reference data of the ISMS
// workflow: the ISO 27001:2022 Annex A control catalog and the fixed
// scoping questionnaire. The data is loaded once and never mutated.
package catalog

import (
	"errors"

	"isms-lab/internal/domain/models"
)

// ErrControlNotFound is returned when a control id has no catalog entry.
var ErrControlNotFound = errors.New("control not found")

// annexGroups is the ISO 27001:2022 Annex A catalog in clause order.
var annexGroups = []models.AnnexGroup{
	{
		ID:   "A.5",
		Name: "Organizational Controls",
		Controls: []models.Control{
			{ID: "A.5.1", Name: "Policies for information security", Description: "Information security policy and topic-specific policies shall be defined, approved, published, communicated and reviewed."},
			{ID: "A.5.2", Name: "Information security roles and responsibilities", Description: "Information security roles and responsibilities shall be defined and allocated according to the organization needs."},
			{ID: "A.5.3", Name: "Segregation of duties", Description: "Conflicting duties and conflicting areas of responsibility shall be segregated."},
			{ID: "A.5.4", Name: "Management responsibilities", Description: "Management shall require all personnel to apply information security in accordance with established policies and procedures."},
			{ID: "A.5.5", Name: "Contact with authorities", Description: "The organization shall establish and maintain contact with relevant authorities."},
			{ID: "A.5.6", Name: "Contact with special interest groups", Description: "The organization shall establish and maintain contact with special interest groups and specialist security forums."},
			{ID: "A.5.7", Name: "Threat intelligence", Description: "Information relating to information security threats shall be collected and analysed to produce threat intelligence."},
			{ID: "A.5.8", Name: "Information security in project management", Description: "Information security shall be integrated into project management."},
			{ID: "A.5.9", Name: "Inventory of information and other associated assets", Description: "An inventory of information and other associated assets, including owners, shall be developed and maintained."},
			{ID: "A.5.10", Name: "Acceptable use of information and other associated assets", Description: "Rules for the acceptable use and procedures for handling information and associated assets shall be identified, documented and implemented."},
			{ID: "A.5.11", Name: "Return of assets", Description: "Personnel and other interested parties shall return all organizational assets upon change or termination of their employment, contract or agreement."},
			{ID: "A.5.12", Name: "Classification of information", Description: "Information shall be classified according to the information security needs of the organization."},
			{ID: "A.5.13", Name: "Labelling of information", Description: "An appropriate set of procedures for information labelling shall be developed and implemented."},
			{ID: "A.5.14", Name: "Information transfer", Description: "Information transfer rules, procedures or agreements shall be in place for all types of transfer facilities."},
			{ID: "A.5.15", Name: "Access control", Description: "Rules to control physical and logical access to information and other associated assets shall be established and implemented."},
			{ID: "A.5.16", Name: "Identity management", Description: "The full life cycle of identities shall be managed."},
			{ID: "A.5.17", Name: "Authentication information", Description: "Allocation and management of authentication information shall be controlled by a management process."},
			{ID: "A.5.18", Name: "Access rights", Description: "Access rights to information and other associated assets shall be provisioned, reviewed, modified and removed in accordance with the access control policy."},
			{ID: "A.5.19", Name: "Information security in supplier relationships", Description: "Processes and procedures shall be defined and implemented to manage the information security risks associated with the use of supplier products or services."},
			{ID: "A.5.20", Name: "Addressing information security within supplier agreements", Description: "Relevant information security requirements shall be established and agreed with each supplier."},
			{ID: "A.5.21", Name: "Managing information security in the ICT supply chain", Description: "Processes and procedures shall be defined and implemented to manage information security risks in the ICT products and services supply chain."},
			{ID: "A.5.22", Name: "Monitoring, review and change management of supplier services", Description: "The organization shall regularly monitor, review, evaluate and manage change in supplier information security practices and service delivery."},
			{ID: "A.5.23", Name: "Information security for use of cloud services", Description: "Processes for acquisition, use, management and exit from cloud services shall be established in accordance with the organization's information security requirements."},
			{ID: "A.5.24", Name: "Information security incident management planning and preparation", Description: "The organization shall plan and prepare for managing information security incidents by defining, establishing and communicating incident management processes, roles and responsibilities."},
			{ID: "A.5.25", Name: "Assessment and decision on information security events", Description: "The organization shall assess information security events and decide if they are to be categorized as information security incidents."},
			{ID: "A.5.26", Name: "Response to information security incidents", Description: "Information security incidents shall be responded to in accordance with the documented procedures."},
			{ID: "A.5.27", Name: "Learning from information security incidents", Description: "Knowledge gained from information security incidents shall be used to strengthen and improve the information security controls."},
			{ID: "A.5.28", Name: "Collection of evidence", Description: "The organization shall establish and implement procedures for the identification, collection, acquisition and preservation of evidence related to information security events."},
			{ID: "A.5.29", Name: "Information security during disruption", Description: "The organization shall plan how to maintain information security at an appropriate level during disruption."},
			{ID: "A.5.30", Name: "ICT readiness for business continuity", Description: "ICT readiness shall be planned, implemented, maintained and tested based on business continuity objectives and ICT continuity requirements."},
			{ID: "A.5.31", Name: "Legal, statutory, regulatory and contractual requirements", Description: "Legal, statutory, regulatory and contractual requirements relevant to information security shall be identified, documented and kept up to date."},
			{ID: "A.5.32", Name: "Intellectual property rights", Description: "The organization shall implement appropriate procedures to protect intellectual property rights."},
			{ID: "A.5.33", Name: "Protection of records", Description: "Records shall be protected from loss, destruction, falsification, unauthorized access and unauthorized release."},
			{ID: "A.5.34", Name: "Privacy and protection of PII", Description: "The organization shall identify and meet the requirements regarding the preservation of privacy and protection of PII."},
			{ID: "A.5.35", Name: "Independent review of information security", Description: "The organization's approach to managing information security shall be reviewed independently at planned intervals or when significant changes occur."},
			{ID: "A.5.36", Name: "Compliance with policies, rules and standards for information security", Description: "Compliance with the organization's information security policy, topic-specific policies, rules and standards shall be regularly reviewed."},
			{ID: "A.5.37", Name: "Documented operating procedures", Description: "Operating procedures for information processing facilities shall be documented and made available to personnel who need them."},
		},
	},
	{
		ID:   "A.6",
		Name: "People Controls",
		Controls: []models.Control{
			{ID: "A.6.1", Name: "Screening", Description: "Background verification checks on all candidates shall be carried out prior to joining the organization and on an ongoing basis."},
			{ID: "A.6.2", Name: "Terms and conditions of employment", Description: "Employment contractual agreements shall state the personnel's and the organization's responsibilities for information security."},
			{ID: "A.6.3", Name: "Information security awareness, education and training", Description: "Personnel shall receive appropriate information security awareness, education and training and regular updates of policies relevant to their job function."},
			{ID: "A.6.4", Name: "Disciplinary process", Description: "A disciplinary process shall be formalized and communicated to take actions against personnel who have committed an information security policy violation."},
			{ID: "A.6.5", Name: "Responsibilities after termination or change of employment", Description: "Information security responsibilities that remain valid after termination or change of employment shall be defined, enforced and communicated."},
			{ID: "A.6.6", Name: "Confidentiality or non-disclosure agreements", Description: "Confidentiality or non-disclosure agreements reflecting the organization's needs shall be identified, documented, regularly reviewed and signed."},
			{ID: "A.6.7", Name: "Remote working", Description: "Security measures shall be implemented when personnel are working remotely to protect information accessed, processed or stored outside the organization's premises."},
			{ID: "A.6.8", Name: "Information security event reporting", Description: "The organization shall provide a mechanism for personnel to report observed or suspected information security events in a timely manner."},
		},
	},
	{
		ID:   "A.7",
		Name: "Physical Controls",
		Controls: []models.Control{
			{ID: "A.7.1", Name: "Physical security perimeters", Description: "Security perimeters shall be defined and used to protect areas that contain information and other associated assets."},
			{ID: "A.7.2", Name: "Physical entry", Description: "Secure areas shall be protected by appropriate entry controls and access points."},
			{ID: "A.7.3", Name: "Securing offices, rooms and facilities", Description: "Physical security for offices, rooms and facilities shall be designed and implemented."},
			{ID: "A.7.4", Name: "Physical security monitoring", Description: "Premises shall be continuously monitored for unauthorized physical access."},
			{ID: "A.7.5", Name: "Protecting against physical and environmental threats", Description: "Protection against physical and environmental threats, such as natural disasters and other intentional or unintentional threats, shall be designed and implemented."},
			{ID: "A.7.6", Name: "Working in secure areas", Description: "Security measures for working in secure areas shall be designed and implemented."},
			{ID: "A.7.7", Name: "Clear desk and clear screen", Description: "Clear desk rules for papers and removable storage media and clear screen rules for information processing facilities shall be defined and enforced."},
			{ID: "A.7.8", Name: "Equipment siting and protection", Description: "Equipment shall be sited securely and protected."},
			{ID: "A.7.9", Name: "Security of assets off-premises", Description: "Off-site assets shall be protected."},
			{ID: "A.7.10", Name: "Storage media", Description: "Storage media shall be managed through their life cycle of acquisition, use, transportation and disposal."},
			{ID: "A.7.11", Name: "Supporting utilities", Description: "Information processing facilities shall be protected from power failures and other disruptions caused by failures in supporting utilities."},
			{ID: "A.7.12", Name: "Cabling security", Description: "Cables carrying power, data or supporting information services shall be protected from interception, interference or damage."},
			{ID: "A.7.13", Name: "Equipment maintenance", Description: "Equipment shall be maintained correctly to ensure availability, integrity and confidentiality of information."},
			{ID: "A.7.14", Name: "Secure disposal or re-use of equipment", Description: "Items of equipment containing storage media shall be verified to ensure that any sensitive data and licensed software has been removed or securely overwritten prior to disposal or re-use."},
		},
	},
	{
		ID:   "A.8",
		Name: "Technological Controls",
		Controls: []models.Control{
			{ID: "A.8.1", Name: "User endpoint devices", Description: "Information stored on, processed by or accessible via user endpoint devices shall be protected."},
			{ID: "A.8.2", Name: "Privileged access rights", Description: "The allocation and use of privileged access rights shall be restricted and managed."},
			{ID: "A.8.3", Name: "Information access restriction", Description: "Access to information and other associated assets shall be restricted in accordance with the established topic-specific policy on access control."},
			{ID: "A.8.4", Name: "Access to source code", Description: "Read and write access to source code, development tools and software libraries shall be appropriately managed."},
			{ID: "A.8.5", Name: "Secure authentication", Description: "Secure authentication technologies and procedures shall be implemented based on information access restrictions and the topic-specific policy on access control."},
			{ID: "A.8.6", Name: "Capacity management", Description: "The use of resources shall be monitored and adjusted in line with current and expected capacity requirements."},
			{ID: "A.8.7", Name: "Protection against malware", Description: "Protection against malware shall be implemented and supported by appropriate user awareness."},
			{ID: "A.8.8", Name: "Management of technical vulnerabilities", Description: "Information about technical vulnerabilities of information systems in use shall be obtained, the organization's exposure evaluated and appropriate measures taken."},
			{ID: "A.8.9", Name: "Configuration management", Description: "Configurations, including security configurations, of hardware, software, services and networks shall be established, documented, implemented, monitored and reviewed."},
			{ID: "A.8.10", Name: "Information deletion", Description: "Information stored in information systems, devices or in any other storage media shall be deleted when no longer required."},
			{ID: "A.8.11", Name: "Data masking", Description: "Data masking shall be used in accordance with the organization's topic-specific policy on access control and business requirements."},
			{ID: "A.8.12", Name: "Data leakage prevention", Description: "Data leakage prevention measures shall be applied to systems, networks and any other devices that process, store or transmit sensitive information."},
			{ID: "A.8.13", Name: "Information backup", Description: "Backup copies of information, software and systems shall be maintained and regularly tested in accordance with the agreed topic-specific policy on backup."},
			{ID: "A.8.14", Name: "Redundancy of information processing facilities", Description: "Information processing facilities shall be implemented with redundancy sufficient to meet availability requirements."},
			{ID: "A.8.15", Name: "Logging", Description: "Logs that record activities, exceptions, faults and other relevant events shall be produced, stored, protected and analysed."},
			{ID: "A.8.16", Name: "Monitoring activities", Description: "Networks, systems and applications shall be monitored for anomalous behaviour and appropriate actions taken to evaluate potential information security incidents."},
			{ID: "A.8.17", Name: "Clock synchronization", Description: "The clocks of information processing systems used by the organization shall be synchronized to approved time sources."},
			{ID: "A.8.18", Name: "Use of privileged utility programs", Description: "The use of utility programs that can be capable of overriding system and application controls shall be restricted and tightly controlled."},
			{ID: "A.8.19", Name: "Installation of software on operational systems", Description: "Procedures and measures shall be implemented to securely manage software installation on operational systems."},
			{ID: "A.8.20", Name: "Networks security", Description: "Networks and network devices shall be secured, managed and controlled to protect information in systems and applications."},
			{ID: "A.8.21", Name: "Security of network services", Description: "Security mechanisms, service levels and service requirements of network services shall be identified, implemented and monitored."},
			{ID: "A.8.22", Name: "Segregation of networks", Description: "Groups of information services, users and information systems shall be segregated in the organization's networks."},
			{ID: "A.8.23", Name: "Web filtering", Description: "Access to external websites shall be managed to reduce exposure to malicious content."},
			{ID: "A.8.24", Name: "Use of cryptography", Description: "Rules for the effective use of cryptography, including cryptographic key management, shall be defined and implemented."},
			{ID: "A.8.25", Name: "Secure development life cycle", Description: "Rules for the secure development of software and systems shall be established and applied."},
			{ID: "A.8.26", Name: "Application security requirements", Description: "Information security requirements shall be identified, specified and approved when developing or acquiring applications."},
			{ID: "A.8.27", Name: "Secure system architecture and engineering principles", Description: "Principles for engineering secure systems shall be established, documented, maintained and applied to any information system development activities."},
			{ID: "A.8.28", Name: "Secure coding", Description: "Secure coding principles shall be applied to software development."},
			{ID: "A.8.29", Name: "Security testing in development and acceptance", Description: "Security testing processes shall be defined and implemented in the development life cycle."},
			{ID: "A.8.30", Name: "Outsourced development", Description: "The organization shall direct, monitor and review the activities related to outsourced system development."},
			{ID: "A.8.31", Name: "Separation of development, test and production environments", Description: "Development, testing and production environments shall be separated and secured."},
			{ID: "A.8.32", Name: "Change management", Description: "Changes to information processing facilities and information systems shall be subject to change management procedures."},
			{ID: "A.8.33", Name: "Test information", Description: "Test information shall be appropriately selected, protected and managed."},
			{ID: "A.8.34", Name: "Protection of information systems during audit testing", Description: "Audit tests and other assurance activities involving assessment of operational systems shall be planned and agreed between the tester and appropriate management."},
		},
	},
}

// controlIndex maps control ids to their catalog entries.
var controlIndex = buildControlIndex()

func buildControlIndex() map[string]models.Control {
	idx := make(map[string]models.Control)
	for _, group := range annexGroups {
		for _, c := range group.Controls {
			idx[c.ID] = c
		}
	}
	return idx
}

// Groups returns the annex groups in clause order.
func Groups() []models.AnnexGroup {
	return annexGroups
}

// FindControl looks up a control by id.
func FindControl(id string) (models.Control, error) {
	c, ok := controlIndex[id]
	if !ok {
		return models.Control{}, ErrControlNotFound
	}
	return c, nil
}

// TotalControls returns the number of controls in the catalog.
func TotalControls() int {
	return len(controlIndex)
}
