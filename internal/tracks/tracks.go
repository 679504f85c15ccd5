// Package tracks holds the fixed catalog of career tracks the assessment
// recommends toward, plus the static lookup tables the recommendation and
// insight layers read. All of it is configuration data: nothing here is
// created or mutated at runtime.
package tracks

// Track is one of the five career specializations.
type Track struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FocusAreas  []string `json:"focus_areas"`
	CareerPaths []string `json:"career_paths"`
}

// Keys of the five tracks, in declared (tie-break) order.
const (
	NetworkDefense      = "network_defense"
	OffensiveSecurity   = "offensive_security"
	DigitalForensics    = "digital_forensics"
	Governance          = "grc"
	SecurityEngineering = "security_engineering"
)

var all = []Track{
	{
		Key:         NetworkDefense,
		Name:        "Network Defense & Security Operations",
		Description: "Monitor, detect and respond to threats against live infrastructure from inside a security operations center.",
		FocusAreas:  []string{"SIEM operation", "intrusion detection", "threat hunting", "incident triage"},
		CareerPaths: []string{"SOC Analyst", "Threat Hunter", "Incident Responder", "Detection Engineer"},
	},
	{
		Key:         OffensiveSecurity,
		Name:        "Offensive Security & Penetration Testing",
		Description: "Probe systems the way an attacker would, then turn what you broke into fixes the defenders can ship.",
		FocusAreas:  []string{"web exploitation", "network penetration", "social engineering", "exploit development"},
		CareerPaths: []string{"Penetration Tester", "Red Team Operator", "Bug Bounty Hunter", "Exploit Developer"},
	},
	{
		Key:         DigitalForensics,
		Name:        "Digital Forensics & Incident Response",
		Description: "Reconstruct what happened after a compromise: recover evidence, build timelines, attribute the intrusion.",
		FocusAreas:  []string{"disk and memory forensics", "malware analysis", "log reconstruction", "evidence handling"},
		CareerPaths: []string{"Forensic Analyst", "Malware Analyst", "DFIR Consultant", "eDiscovery Specialist"},
	},
	{
		Key:         Governance,
		Name:        "Governance, Risk & Compliance",
		Description: "Translate between business risk and technical controls: audits, policy, frameworks and vendor assurance.",
		FocusAreas:  []string{"risk assessment", "compliance frameworks", "security policy", "audit management"},
		CareerPaths: []string{"GRC Analyst", "Security Auditor", "Risk Manager", "Compliance Officer"},
	},
	{
		Key:         SecurityEngineering,
		Name:        "Security Engineering & Application Security",
		Description: "Build security in: secure design, code review, tooling and the infrastructure that keeps software safe by default.",
		FocusAreas:  []string{"secure development", "code review", "security automation", "cloud security architecture"},
		CareerPaths: []string{"Security Engineer", "Application Security Engineer", "DevSecOps Engineer", "Security Architect"},
	},
}

// All returns the track catalog in declared order. Callers must not mutate
// the returned slice.
func All() []Track { return all }

// Get looks a track up by key.
func Get(key string) (Track, bool) {
	for _, t := range all {
		if t.Key == key {
			return t, true
		}
	}
	return Track{}, false
}

// Count is the number of tracks in the catalog.
func Count() int { return len(all) }
