package models

// Personalization request payloads. Each is transient, validated per call and
// never persisted.

type AnalyzeBackgroundRequest struct {
	Background string `json:"background"`
}

type CustomizeCourseRequest struct {
	Background string `json:"background"`
}

type CustomizeUnitRequest struct {
	URL        string `json:"url"`
	Background string `json:"background"`
}

// LocalizationContext describes the learner a localized resource set is
// generated for.
type LocalizationContext struct {
	Region     string `json:"region"`
	Background string `json:"background"`
	Experience string `json:"experience"`
	Interests  string `json:"interests"`
}

type LocalizeRequest struct {
	NodeTitle       string              `json:"nodeTitle"`
	NodeDescription string              `json:"nodeDescription"`
	Context         LocalizationContext `json:"context"`
}

type CareerSuggestionsRequest struct {
	CurrentRole     string `json:"currentRole"`
	YearsExperience string `json:"yearsExperience"`
	Background      string `json:"background"`
	Skills          string `json:"skills"`
	Interests       string `json:"interests"`
}

type WritingFeedbackRequest struct {
	Step    string `json:"step"`
	Content string `json:"content"`
}

// Personalization result shapes. The prompt builder reflects these structs
// into the JSON schema block appended to each prompt, and the extractor checks
// the same top-level fields, so the contract lives in exactly one place.

type PersonaAnalysis struct {
	Persona   string `json:"persona" jsonschema:"description=One of the catalog persona ids"`
	Role      string `json:"role" jsonschema:"description=Short label for the visitor's professional role"`
	Reasoning string `json:"reasoning" jsonschema:"description=Why this persona fits the stated background"`
}

type CourseUnit struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Outcomes    []string `json:"outcomes"`
}

type CourseCustomization struct {
	Units []CourseUnit `json:"units"`
}

type RolePlayExercise struct {
	Scenario     string   `json:"scenario"`
	Objectives   []string `json:"objectives"`
	Setup        string   `json:"setup"`
	KeyQuestions []string `json:"keyQuestions"`
}

type NewsItem struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Relevance string `json:"relevance"`
}

type CustomizedUnit struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	RolePlay     RolePlayExercise `json:"rolePlay"`
	RelevantNews []NewsItem       `json:"relevantNews"`
}

type UnitCustomization struct {
	CustomizedUnit CustomizedUnit `json:"customizedUnit"`
}

type LocalizedResource struct {
	Title       string `json:"title"`
	Type        string `json:"type" jsonschema:"description=paper|course|organization"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type CaseStudy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Region      string `json:"region"`
}

type LocalizedContent struct {
	Resources   []LocalizedResource `json:"resources"`
	CaseStudies []CaseStudy         `json:"caseStudies"`
}

type CareerSuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FitReason   string   `json:"fitReason"`
	NextSteps   []string `json:"nextSteps"`
}

type CareerSuggestions struct {
	Suggestions []CareerSuggestion `json:"suggestions"`
}

// Writing feedback shapes, one per framework step.

type RefinedIdea struct {
	Idea      string `json:"idea"`
	Rationale string `json:"rationale"`
}

type IdeasFeedback struct {
	RefinedIdeas []RefinedIdea `json:"refinedIdeas"`
	Themes       []string      `json:"themes"`
}

type AudienceAnalysisFeedback struct {
	Understanding string   `json:"understanding"`
	NotExplaining string   `json:"notExplaining"`
	Interest      string   `json:"interest"`
	Takeaways     string   `json:"takeaways"`
	Gaps          []string `json:"gaps"`
}

type HeadlineCritique struct {
	Headline string `json:"headline"`
	Score    int    `json:"score" jsonschema:"description=1-10 against the clear/who/what/why guidelines"`
	Feedback string `json:"feedback"`
}

type HeadlinesFeedback struct {
	Critiques   []HeadlineCritique `json:"critiques"`
	Suggestions []string           `json:"suggestions"`
}

type StoryFeedback struct {
	MainStory    string   `json:"mainStory"`
	Fulfillment  string   `json:"fulfillment"`
	Journey      string   `json:"journey"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type OutlineFeedback struct {
	StructureFeedback  string   `json:"structureFeedback"`
	PointFeedback      []string `json:"pointFeedback"`
	ConclusionFeedback string   `json:"conclusionFeedback"`
}
