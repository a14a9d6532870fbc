package db

import "safetypath/models"

// SeedPathways returns the fixture pathway catalog. IDs are stable across
// restarts so clients can bookmark them.
func SeedPathways() []models.Pathway {
	return []models.Pathway{
		{
			ID:          1,
			Title:       "AI Safety Fundamentals",
			Description: "Why advanced AI systems need safety work, from reward hacking to goal misalignment.",
			Difficulty:  "beginner",
			Duration:    "4 weeks",
			Category:    "foundations",
			Persona:     "learner",
			Steps: []models.PathwayStep{
				{Title: "What can go wrong", Description: "Concrete failure modes: specification gaming, distributional shift, unintended consequences."},
				{Title: "Alignment basics", Description: "The difference between what we ask for and what we want."},
				{Title: "Current research landscape", Description: "Survey of interpretability, oversight, and governance work."},
				{Title: "Pick your direction", Description: "Map your background onto open problems."},
			},
			SkillsGained: []string{"threat-modeling", "alignment-literacy"},
		},
		{
			ID:          2,
			Title:       "Technical Alignment Track",
			Description: "Hands-on introduction to interpretability and evaluation of large models.",
			Difficulty:  "advanced",
			Duration:    "8 weeks",
			Category:    "technical",
			Persona:     "learner",
			Steps: []models.PathwayStep{
				{Title: "Transformer internals", Description: "Attention, residual streams, and where behavior lives."},
				{Title: "Interpretability methods", Description: "Probing, activation patching, feature visualization."},
				{Title: "Model evaluations", Description: "Designing evals for dangerous capabilities."},
			},
			Dependencies:   []int{1},
			SkillsRequired: []string{"python", "ml-basics"},
			SkillsGained:   []string{"interpretability", "evals"},
		},
		{
			ID:          3,
			Title:       "AI at Home",
			Description: "A practical guide for parents: what AI systems children use, and what to watch for.",
			Difficulty:  "beginner",
			Duration:    "2 weeks",
			Category:    "society",
			Persona:     "parent",
			Steps: []models.PathwayStep{
				{Title: "AI in everyday products", Description: "Recommenders, chatbots, and generated media in family life."},
				{Title: "Risks for young users", Description: "Persuasion, privacy, and age-appropriate use."},
				{Title: "Healthy defaults", Description: "Settings and habits that keep AI tools useful."},
			},
			SkillsGained: []string{"ai-literacy"},
		},
		{
			ID:          4,
			Title:       "Governance and Policy Foundations",
			Description: "How governments and institutions shape the trajectory of AI development.",
			Difficulty:  "intermediate",
			Duration:    "6 weeks",
			Category:    "policy",
			Persona:     "policymaker",
			Steps: []models.PathwayStep{
				{Title: "The policy toolbox", Description: "Standards, licensing, liability, and compute governance."},
				{Title: "International landscape", Description: "Comparing regulatory approaches across jurisdictions."},
				{Title: "Evaluating policy proposals", Description: "Trade-offs between innovation, safety, and enforceability."},
				{Title: "Drafting exercise", Description: "Write a short policy memo on a frontier-AI question."},
			},
			SkillsGained: []string{"policy-analysis", "ai-governance"},
		},
		{
			ID:          5,
			Title:       "Risk Assessment in Practice",
			Description: "Applying structured risk frameworks to deployed AI systems.",
			Difficulty:  "intermediate",
			Duration:    "5 weeks",
			Category:    "policy",
			Persona:     "policymaker",
			Steps: []models.PathwayStep{
				{Title: "Risk taxonomies", Description: "Discrimination, privacy, system safety, socioeconomic impact."},
				{Title: "Incident analysis", Description: "Learning from documented AI failures."},
				{Title: "Assessment frameworks", Description: "From impact assessments to red-team reports."},
			},
			Dependencies: []int{4},
			SkillsGained: []string{"risk-assessment"},
		},
	}
}

// SeedResources returns standalone resource records referencing the fixture
// pathways. The external catalog entries come from the global initiatives the
// ecosystem page lists.
func SeedResources() []models.Resource {
	return []models.Resource{
		{
			ID:          1,
			Title:       "AI Safety Fundamentals Course",
			Type:        "course",
			URL:         "https://bluedot.org",
			Description: "Structured AI safety curriculum with facilitated cohorts.",
			Provider:    "BlueDot Learning",
			Tags:        []string{"foundations", "alignment"},
			Difficulty:  "beginner",
			PathwayID:   1,
		},
		{
			ID:          2,
			Title:       "Concrete Problems in AI Safety",
			Type:        "paper",
			URL:         "https://arxiv.org/abs/1606.06565",
			Description: "The canonical survey of practical safety problems in machine learning systems.",
			Provider:    "arXiv",
			Tags:        []string{"foundations", "research"},
			Difficulty:  "intermediate",
			PathwayID:   1,
		},
		{
			ID:          3,
			Title:       "AI Safety Camp",
			Type:        "organization",
			URL:         "https://aisafety.camp",
			Description: "Intensive research camps focused on AI safety problems.",
			Provider:    "AI Safety Camp",
			Tags:        []string{"research", "training"},
			Difficulty:  "advanced",
			PathwayID:   2,
		},
		{
			ID:          4,
			Title:       "MIT AI Risk Repository",
			Type:        "organization",
			URL:         "https://airisk.mit.edu",
			Description: "Comprehensive catalog of documented AI risks and safety measures.",
			Provider:    "MIT",
			Tags:        []string{"risk", "policy"},
			Difficulty:  "intermediate",
			PathwayID:   5,
		},
		{
			ID:          5,
			Title:       "Pause AI",
			Type:        "organization",
			URL:         "https://pauseai.info",
			Description: "Initiative advocating for responsible AI development.",
			Provider:    "Pause AI",
			Tags:        []string{"advocacy", "policy"},
			Difficulty:  "beginner",
			PathwayID:   4,
		},
		{
			ID:          6,
			Title:       "Interpretability in the Wild",
			Type:        "paper",
			URL:         "https://arxiv.org/abs/2211.00593",
			Description: "A worked example of circuit-level analysis in a real language model.",
			Provider:    "arXiv",
			Tags:        []string{"interpretability", "technical"},
			Difficulty:  "advanced",
			PathwayID:   2,
		},
	}
}

// SeedTools returns the static tool catalog.
func SeedTools() []models.Tool {
	return []models.Tool{
		{
			ID:          1,
			Name:        "Background Analyzer",
			Type:        "personalization",
			Description: "Suggests a learning persona from a free-text description of your background.",
		},
		{
			ID:          2,
			Name:        "Course Importer",
			Type:        "personalization",
			Description: "Customizes an imported course unit for your background, with a role-play exercise.",
		},
		{
			ID:          3,
			Name:        "Career Explorer",
			Type:        "personalization",
			Description: "Maps your profile onto AI safety career trajectories.",
		},
		{
			ID:          4,
			Name:        "Writing Framework",
			Type:        "writing",
			Description: "Five-step drafting framework with AI feedback at each step.",
			Template: map[string]any{
				"steps": []string{"ideas", "audience", "headlines", "story", "outline"},
			},
		},
	}
}
