package tracks

// Static per-track tables read by the recommendation and insight layers.
// Kept as data so product can retune copy without touching scoring code.

// Reasoning holds the one descriptive sentence appended to every
// recommendation's reasoning list.
var Reasoning = map[string]string{
	NetworkDefense:      "Your responses show a watchful, systems-level mindset suited to defending live environments.",
	OffensiveSecurity:   "Your responses show the adversarial curiosity that drives effective offensive work.",
	DigitalForensics:    "Your responses show the patience and rigor that careful investigative work demands.",
	Governance:          "Your responses show an aptitude for connecting technical controls to organizational risk.",
	SecurityEngineering: "Your responses show a builder's instinct for designing systems that are secure by default.",
}

// Strengths lists up to four aligned-strength labels per track.
var Strengths = map[string][]string{
	NetworkDefense:      {"Pattern recognition", "Sustained vigilance", "Calm under incident pressure", "Network fluency"},
	OffensiveSecurity:   {"Adversarial thinking", "Creative problem solving", "Persistence", "Tooling improvisation"},
	DigitalForensics:    {"Attention to detail", "Methodical analysis", "Written communication", "Evidence discipline"},
	Governance:          {"Risk framing", "Stakeholder communication", "Process design", "Regulatory literacy"},
	SecurityEngineering: {"Systems design", "Code literacy", "Automation mindset", "Threat modeling"},
}

// OptimalPath is the single-sentence recommended route into each track.
var OptimalPath = map[string]string{
	NetworkDefense:      "Start with networking fundamentals and a SIEM home lab, then target a tier-1 SOC role to build incident reps.",
	OffensiveSecurity:   "Build web and network exploitation skills on practice ranges, then validate them with an offensive certification and CTF record.",
	DigitalForensics:    "Learn file systems and memory internals first, then practice end-to-end investigations on public forensic images.",
	Governance:          "Ground yourself in one major framework, then shadow audits and risk assessments to learn how findings move an organization.",
	SecurityEngineering: "Deepen your software engineering base, then add threat modeling and secure code review to it project by project.",
}

// LearningPath holds the ordered study steps per track.
var LearningPath = map[string][]string{
	NetworkDefense: {
		"Networking and operating system fundamentals",
		"Log analysis and SIEM operation",
		"Detection writing and threat hunting",
		"Incident response process and tabletop practice",
	},
	OffensiveSecurity: {
		"Scripting and networking fundamentals",
		"Web application exploitation",
		"Network and Active Directory attacks",
		"Reporting and remediation guidance",
	},
	DigitalForensics: {
		"File system and operating system internals",
		"Disk and memory acquisition",
		"Timeline reconstruction and artifact analysis",
		"Malware triage and report writing",
	},
	Governance: {
		"Core security concepts and terminology",
		"One compliance framework end to end",
		"Risk assessment methodology",
		"Audit execution and executive reporting",
	},
	SecurityEngineering: {
		"Software engineering and version control discipline",
		"Secure coding and common vulnerability classes",
		"Threat modeling and design review",
		"Security automation in the delivery pipeline",
	},
}

// Foundations lists prerequisite topics recommended before the learning path.
var Foundations = map[string][]string{
	NetworkDefense:      {"TCP/IP", "Linux administration", "Windows event logging"},
	OffensiveSecurity:   {"Python or Bash scripting", "HTTP and web architecture", "Linux command line"},
	DigitalForensics:    {"Operating system internals", "File systems", "Basic criminal/civil procedure awareness"},
	Governance:          {"Security fundamentals", "Business writing", "Spreadsheet-level data analysis"},
	SecurityEngineering: {"One general-purpose language", "Git and CI pipelines", "Cloud service basics"},
}

// Growth lists development areas typically under-exercised by people drawn
// to each track.
var Growth = map[string][]string{
	NetworkDefense:      {"Automating repetitive triage", "Offensive techniques to sharpen detection"},
	OffensiveSecurity:   {"Defensive context for findings", "Long-form report writing"},
	DigitalForensics:    {"Live-environment response speed", "Courtroom-style presentation"},
	Governance:          {"Hands-on technical depth", "Reading code and configurations"},
	SecurityEngineering: {"Operational incident exposure", "Compliance constraints on design"},
}

// Traits maps each track to the personality-trait triple surfaced in deep
// insights.
var Traits = map[string]TraitProfile{
	NetworkDefense:      {SecurityMindset: "protective", CollaborationStyle: "coordinated team response", RiskTolerance: "low"},
	OffensiveSecurity:   {SecurityMindset: "adversarial", CollaborationStyle: "small autonomous teams", RiskTolerance: "high"},
	DigitalForensics:    {SecurityMindset: "investigative", CollaborationStyle: "independent with peer review", RiskTolerance: "low"},
	Governance:          {SecurityMindset: "structural", CollaborationStyle: "cross-functional facilitation", RiskTolerance: "moderate"},
	SecurityEngineering: {SecurityMindset: "preventive", CollaborationStyle: "embedded in delivery teams", RiskTolerance: "moderate"},
}

// TraitProfile is the static personality triple for one track.
type TraitProfile struct {
	SecurityMindset    string `json:"security_mindset"`
	CollaborationStyle string `json:"collaboration_style"`
	RiskTolerance      string `json:"risk_tolerance"`
}
