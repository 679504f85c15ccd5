package catalog

import "github.com/cyberpath/cyberpath-engine/internal/tracks"

// Default returns the built-in question bank. The bank is validated at
// startup; a panic here means the shipped data is broken, not bad user input.
func Default() *Catalog {
	c, err := New(defaultQuestions)
	if err != nil {
		panic("catalog: invalid built-in question bank: " + err.Error())
	}
	return c
}

var defaultQuestions = []Question{
	// technical_aptitude
	{
		ID:       "ta_learning_new_tech",
		Prompt:   "A new security tool lands on your desk with sparse documentation. What do you do first?",
		Category: TechnicalAptitude,
		Options: []Option{
			{Value: "a", Text: "Install it in a lab and poke at it until it makes sense",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.NetworkDefense: 2, tracks.SecurityEngineering: 1}},
			{Value: "b", Text: "Read the source or config format before running anything",
				Weights: map[string]int{tracks.SecurityEngineering: 3, tracks.DigitalForensics: 2}},
			{Value: "c", Text: "Find a structured course or walkthrough that covers it",
				Weights: map[string]int{tracks.Governance: 2, tracks.NetworkDefense: 1}},
			{Value: "d", Text: "Ask whoever deployed it to demo their workflow",
				Weights: map[string]int{tracks.Governance: 3, tracks.NetworkDefense: 1}},
		},
	},
	{
		ID:       "ta_scripting_comfort",
		Prompt:   "How do you feel about writing code or scripts as part of your day?",
		Category: TechnicalAptitude,
		Options: []Option{
			{Value: "a", Text: "I'd happily automate everything I touch",
				Weights: map[string]int{tracks.SecurityEngineering: 3, tracks.OffensiveSecurity: 2}},
			{Value: "b", Text: "Comfortable when a task needs it, not a goal in itself",
				Weights: map[string]int{tracks.NetworkDefense: 2, tracks.DigitalForensics: 2}},
			{Value: "c", Text: "I can read scripts but prefer working with finished tools",
				Weights: map[string]int{tracks.NetworkDefense: 2, tracks.Governance: 1}},
			{Value: "d", Text: "I'd rather work with people and process than code",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "ta_system_interest",
		Prompt:   "Which layer of a system are you most curious about?",
		Category: TechnicalAptitude,
		Options: []Option{
			{Value: "a", Text: "Network traffic and what moves between machines",
				Weights: map[string]int{tracks.NetworkDefense: 3, tracks.OffensiveSecurity: 1}},
			{Value: "b", Text: "What's left on disk and in memory after something runs",
				Weights: map[string]int{tracks.DigitalForensics: 3, tracks.NetworkDefense: 1}},
			{Value: "c", Text: "The application code and how it can be misused",
				Weights: map[string]int{tracks.SecurityEngineering: 3, tracks.OffensiveSecurity: 2}},
			{Value: "d", Text: "The people and processes wrapped around the system",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	// problem_solving
	{
		ID:       "ps_puzzle_style",
		Prompt:   "You're stuck on a hard problem. Which approach feels most natural?",
		Category: ProblemSolving,
		Options: []Option{
			{Value: "a", Text: "Decompose it into parts and eliminate possibilities methodically",
				Weights: map[string]int{tracks.DigitalForensics: 3, tracks.SecurityEngineering: 2}},
			{Value: "b", Text: "Try unconventional angles until something unexpected works",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.NetworkDefense: 1}},
			{Value: "c", Text: "Look for an established method someone has already proven",
				Weights: map[string]int{tracks.Governance: 2, tracks.NetworkDefense: 2}},
			{Value: "d", Text: "Talk it through with others until the shape becomes clear",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "ps_incomplete_info",
		Prompt:   "Half the information you need is missing. How do you proceed?",
		Category: ProblemSolving,
		Options: []Option{
			{Value: "a", Text: "Reconstruct what's missing from the traces that remain",
				Weights: map[string]int{tracks.DigitalForensics: 3, tracks.NetworkDefense: 2}},
			{Value: "b", Text: "Act on a working hypothesis and adjust as evidence arrives",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.NetworkDefense: 2}},
			{Value: "c", Text: "Build a model of the risk and decide what's acceptable",
				Weights: map[string]int{tracks.Governance: 3}},
			{Value: "d", Text: "Design the system so the gap can't hurt you either way",
				Weights: map[string]int{tracks.SecurityEngineering: 3}},
		},
	},
	{
		ID:       "ps_detail_vs_big_picture",
		Prompt:   "Which failure would bother you more?",
		Category: ProblemSolving,
		Options: []Option{
			{Value: "a", Text: "Missing one small artifact that would have cracked the case",
				Weights: map[string]int{tracks.DigitalForensics: 3}},
			{Value: "b", Text: "Defending every wall but the one the attacker picked",
				Weights: map[string]int{tracks.OffensiveSecurity: 2, tracks.NetworkDefense: 2}},
			{Value: "c", Text: "Shipping a design flaw no test would ever catch",
				Weights: map[string]int{tracks.SecurityEngineering: 3}},
			{Value: "d", Text: "Passing an audit while real risk goes unmeasured",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	// scenario_preference
	{
		ID:       "sc_breach_day",
		Prompt:   "A breach is unfolding right now. Which seat do you want?",
		Category: ScenarioPreference,
		Options: []Option{
			{Value: "a", Text: "On the consoles, containing it as it happens",
				Weights: map[string]int{tracks.NetworkDefense: 3}},
			{Value: "b", Text: "Reconstructing how they got in once it's contained",
				Weights: map[string]int{tracks.DigitalForensics: 3}},
			{Value: "c", Text: "Re-running the attack afterward to prove the fix holds",
				Weights: map[string]int{tracks.OffensiveSecurity: 3}},
			{Value: "d", Text: "Briefing leadership and steering the disclosure decisions",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "sc_ideal_project",
		Prompt:   "Pick the project you'd volunteer for.",
		Category: ScenarioPreference,
		Options: []Option{
			{Value: "a", Text: "An authorized penetration test of a partner's new platform",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.SecurityEngineering: 1}},
			{Value: "b", Text: "Building detections for a threat the team keeps missing",
				Weights: map[string]int{tracks.NetworkDefense: 3, tracks.SecurityEngineering: 1}},
			{Value: "c", Text: "A cold-case investigation with a drawer full of disk images",
				Weights: map[string]int{tracks.DigitalForensics: 3}},
			{Value: "d", Text: "Getting the company through its first compliance certification",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "sc_code_review",
		Prompt:   "A developer asks you to look at their authentication code. Your instinct?",
		Category: ScenarioPreference,
		Options: []Option{
			{Value: "a", Text: "Read it line by line for logic flaws and fix them together",
				Weights: map[string]int{tracks.SecurityEngineering: 3}},
			{Value: "b", Text: "Attack the running login flow and show them what breaks",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.SecurityEngineering: 1}},
			{Value: "c", Text: "Check it logs enough that a compromise could be investigated",
				Weights: map[string]int{tracks.DigitalForensics: 2, tracks.NetworkDefense: 2}},
			{Value: "d", Text: "Map it against the policy and standards it has to meet",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	// work_style
	{
		ID:       "ws_team_size",
		Prompt:   "What working arrangement gets your best work out of you?",
		Category: WorkStyle,
		Options: []Option{
			{Value: "a", Text: "A tight team sharing one queue and one mission",
				Weights: map[string]int{tracks.NetworkDefense: 3, tracks.Governance: 1}},
			{Value: "b", Text: "Mostly solo deep work with occasional peer review",
				Weights: map[string]int{tracks.DigitalForensics: 3, tracks.OffensiveSecurity: 2}},
			{Value: "c", Text: "Embedded with builders, influencing what ships",
				Weights: map[string]int{tracks.SecurityEngineering: 3}},
			{Value: "d", Text: "Moving between departments, aligning people who disagree",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "ws_pace",
		Prompt:   "Which rhythm suits you?",
		Category: WorkStyle,
		Options: []Option{
			{Value: "a", Text: "Unpredictable bursts: quiet watches, then all hands",
				Weights: map[string]int{tracks.NetworkDefense: 3, tracks.DigitalForensics: 1}},
			{Value: "b", Text: "Long engagements with a clear start, end and report",
				Weights: map[string]int{tracks.OffensiveSecurity: 3, tracks.DigitalForensics: 2}},
			{Value: "c", Text: "Steady iteration on a product that keeps improving",
				Weights: map[string]int{tracks.SecurityEngineering: 3}},
			{Value: "d", Text: "Planned cycles around audits, reviews and deadlines",
				Weights: map[string]int{tracks.Governance: 3}},
		},
	},
	{
		ID:       "ws_recognition",
		Prompt:   "Which outcome would make your year?",
		Category: WorkStyle,
		Options: []Option{
			{Value: "a", Text: "The intrusion you caught that never became a headline",
				Weights: map[string]int{tracks.NetworkDefense: 3}},
			{Value: "b", Text: "A finding so sharp the vendor rewrote their product",
				Weights: map[string]int{tracks.OffensiveSecurity: 3}},
			{Value: "c", Text: "Your analysis standing up under hostile cross-examination",
				Weights: map[string]int{tracks.DigitalForensics: 3}},
			{Value: "d", Text: "A framework you built that outlasts your tenure",
				Weights: map[string]int{tracks.Governance: 2, tracks.SecurityEngineering: 2}},
		},
	},
}
