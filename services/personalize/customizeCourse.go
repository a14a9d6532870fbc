package personalize

import (
	"context"
	"log"

	"safetypath/models"
)

var courseCustomizationContract = []requiredField{
	{name: "units", kind: kindArray},
}

// CustomizeCourse generates course units tailored to the learner background.
func (s *Service) CustomizeCourse(ctx context.Context, req *models.CustomizeCourseRequest) (*models.CourseCustomization, error) {
	if err := requireText("background", req.Background); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Starting course customization")
	prompt := buildCustomizeCoursePrompt(req)

	completion, err := s.completer.Complete(ctx, COURSE_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extractInto[models.CourseCustomization](completion, courseCustomizationContract)
	if err != nil {
		log.Printf("[ERROR] Course customization extraction failed: %v, raw reply: %s", err, completion)
		return nil, err
	}

	log.Printf("[INFO] Course customization completed with %d units", len(result.Units))
	return result, nil
}
