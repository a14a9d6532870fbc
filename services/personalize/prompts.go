package personalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"safetypath/models"

	"github.com/invopop/jsonschema"
)

const (
	ANALYZE_SYSTEM_PROMPT = `You are an AI safety education advisor. You map a visitor's self-described professional background onto one of a fixed set of learning personas.`

	COURSE_SYSTEM_PROMPT = `You are an AI safety curriculum designer. You adapt course content so its examples and outcomes speak directly to the learner's professional background.`

	UNIT_SYSTEM_PROMPT = `You are an AI safety course facilitator. You customize a single course unit for a learner, including an interactive role-play exercise grounded in their professional world.`

	LOCALIZE_SYSTEM_PROMPT = `You are a regional AI safety education expert.`

	CAREER_SYSTEM_PROMPT = `You are an AI safety career advisor. You suggest realistic career trajectories into AI safety work based on a candidate's existing profile.`

	WRITING_SYSTEM_PROMPT = `You are a writing coach for AI safety communicators, giving feedback within a five-step drafting framework (ideas, audience, headlines, story, outline).`

	ANALYZE_PROMPT = `A visitor described their background as:
%s

Classify them into exactly one of these learning personas: %s.
Also name their professional role in a few words and explain briefly why the chosen persona fits.`

	COURSE_PROMPT = `A learner with the following background is starting an AI safety course:
%s

Design 3-5 course units customized for this background. Each unit needs a title, a description, concrete examples drawn from the learner's field, and learning outcomes.`

	UNIT_PROMPT = `A learner wants this course unit customized:
Course unit URL: %s

Learner background:
%s

Produce a customized version of the unit: a title and description adapted to the background, an interactive role-play exercise (scenario, learning objectives, exercise setup, reflection questions), and recent news items relevant to the unit for this learner.`

	LOCALIZE_PROMPT = `Given an AI safety learning resource:
Title: %s
Description: %s

Generate region-specific resources and adaptations for a learner with the following context:
Region: %s
Background: %s
Experience Level: %s
Interests: %s
%s
Provide localized resources (papers, courses, organizations) and regional case studies.`

	CAREER_PROMPT = `A candidate is exploring AI safety career paths.

Current role: %s
Years of experience: %s
Professional background: %s
Key skills: %s
AI safety interests: %s

Suggest 3-5 concrete career trajectories into AI safety. For each, give a title, a description, why it fits this profile, and practical next steps.`

	KNOWN_RESOURCES_SECTION = `
These catalog resources may be relevant; prefer them over invented ones where they fit:
%s`
)

// Per-step writing feedback instructions, keyed by framework step.
var writingStepPrompts = map[string]string{
	"ideas": `The writer listed their top article ideas:
%s

Refine each idea (with a rationale) and name the common themes worth pursuing.`,
	"audience": `The writer described their audience analysis:
%s

Give feedback on what the audience already understands, what the article should not explain, why the audience would be interested, what they will take away, and any gaps in the analysis.`,
	"headlines": `The writer drafted these candidate headlines:
%s

Critique each against the guidelines (be clear not clever; specify the WHO, the WHAT, and the WHY), score it 1-10, and suggest stronger alternatives.`,
	"story": `The writer described the story their article tells:
%s

Give feedback on the main story, on how the headline's promise is fulfilled, and on how the reader is taken from A to B. List strengths and improvements.`,
	"outline": `The writer drafted this scrappy outline:
%s

Give feedback on the overall structure, on each main point, and on the one-sentence conclusion.`,
}

// jsonShape reflects a result struct into an indented JSON Schema. Appending
// the schema to every prompt keeps the model's reply shape and the
// extractor's contract anchored to the same Go type.
func jsonShape[T any]() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	rendered, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		// Reflection of our own result structs cannot fail at runtime.
		panic(fmt.Sprintf("failed to render response schema: %v", err))
	}
	return string(rendered)
}

func withShape[T any](prompt string) string {
	return fmt.Sprintf(`%s

Return ONLY valid JSON matching this JSON Schema (no markdown, no commentary):
%s`, prompt, jsonShape[T]())
}

func buildAnalyzeBackgroundPrompt(req *models.AnalyzeBackgroundRequest, personaIDs []string) string {
	prompt := fmt.Sprintf(ANALYZE_PROMPT, req.Background, strings.Join(personaIDs, ", "))
	return withShape[models.PersonaAnalysis](prompt)
}

func buildCustomizeCoursePrompt(req *models.CustomizeCourseRequest) string {
	prompt := fmt.Sprintf(COURSE_PROMPT, req.Background)
	return withShape[models.CourseCustomization](prompt)
}

func buildCustomizeUnitPrompt(req *models.CustomizeUnitRequest) string {
	prompt := fmt.Sprintf(UNIT_PROMPT, req.URL, req.Background)
	return withShape[models.UnitCustomization](prompt)
}

func buildLocalizePrompt(req *models.LocalizeRequest, knownResources []models.Resource) string {
	resourcesSection := ""
	if len(knownResources) > 0 {
		var listing strings.Builder
		for _, res := range knownResources {
			listing.WriteString(fmt.Sprintf("- %s (%s) %s: %s\n", res.Title, res.Type, res.URL, res.Description))
		}
		resourcesSection = fmt.Sprintf(KNOWN_RESOURCES_SECTION, listing.String())
	}

	prompt := fmt.Sprintf(LOCALIZE_PROMPT,
		req.NodeTitle, req.NodeDescription,
		req.Context.Region, req.Context.Background, req.Context.Experience, req.Context.Interests,
		resourcesSection)
	return withShape[models.LocalizedContent](prompt)
}

func buildCareerSuggestionsPrompt(req *models.CareerSuggestionsRequest) string {
	prompt := fmt.Sprintf(CAREER_PROMPT,
		req.CurrentRole, req.YearsExperience, req.Background, req.Skills, req.Interests)
	return withShape[models.CareerSuggestions](prompt)
}

func buildWritingFeedbackPrompt(req *models.WritingFeedbackRequest) (string, bool) {
	template, ok := writingStepPrompts[req.Step]
	if !ok {
		return "", false
	}
	prompt := fmt.Sprintf(template, req.Content)

	switch req.Step {
	case "ideas":
		return withShape[models.IdeasFeedback](prompt), true
	case "audience":
		return withShape[models.AudienceAnalysisFeedback](prompt), true
	case "headlines":
		return withShape[models.HeadlinesFeedback](prompt), true
	case "story":
		return withShape[models.StoryFeedback](prompt), true
	case "outline":
		return withShape[models.OutlineFeedback](prompt), true
	default:
		return "", false
	}
}
