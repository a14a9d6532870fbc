package personalize

import (
	"context"
	"fmt"
	"log"

	"safetypath/models"
)

// WritingSteps are the framework steps accepted by WritingFeedback, in order.
var WritingSteps = []string{"ideas", "audience", "headlines", "story", "outline"}

// WritingFeedback gives step-specific feedback within the five-step drafting
// framework. The result shape depends on the step; the dispatch is an
// explicit switch so a new step cannot be added without a result type.
func (s *Service) WritingFeedback(ctx context.Context, req *models.WritingFeedbackRequest) (any, error) {
	if err := requireText("step", req.Step); err != nil {
		return nil, err
	}
	if err := requireText("content", req.Content); err != nil {
		return nil, err
	}

	prompt, ok := buildWritingFeedbackPrompt(req)
	if !ok {
		return nil, &ValidationError{Field: "step", Message: fmt.Sprintf("must be one of %v", WritingSteps)}
	}

	log.Printf("[INFO] Starting writing feedback for step %q", req.Step)
	completion, err := s.completer.Complete(ctx, WRITING_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	var result any
	switch req.Step {
	case "ideas":
		result, err = extractInto[models.IdeasFeedback](completion, []requiredField{
			{name: "refinedIdeas", kind: kindArray},
			{name: "themes", kind: kindArray},
		})
	case "audience":
		result, err = extractInto[models.AudienceAnalysisFeedback](completion, []requiredField{
			{name: "understanding", kind: kindString},
			{name: "notExplaining", kind: kindString},
			{name: "interest", kind: kindString},
			{name: "takeaways", kind: kindString},
			{name: "gaps", kind: kindArray},
		})
	case "headlines":
		result, err = extractInto[models.HeadlinesFeedback](completion, []requiredField{
			{name: "critiques", kind: kindArray},
			{name: "suggestions", kind: kindArray},
		})
	case "story":
		result, err = extractInto[models.StoryFeedback](completion, []requiredField{
			{name: "mainStory", kind: kindString},
			{name: "fulfillment", kind: kindString},
			{name: "journey", kind: kindString},
			{name: "strengths", kind: kindArray},
			{name: "improvements", kind: kindArray},
		})
	case "outline":
		result, err = extractInto[models.OutlineFeedback](completion, []requiredField{
			{name: "structureFeedback", kind: kindString},
			{name: "pointFeedback", kind: kindArray},
			{name: "conclusionFeedback", kind: kindString},
		})
	default:
		return nil, &ValidationError{Field: "step", Message: fmt.Sprintf("must be one of %v", WritingSteps)}
	}

	if err != nil {
		log.Printf("[ERROR] Writing feedback extraction failed for step %q: %v, raw reply: %s", req.Step, err, completion)
		return nil, err
	}

	log.Printf("[INFO] Writing feedback completed for step %q", req.Step)
	return result, nil
}
