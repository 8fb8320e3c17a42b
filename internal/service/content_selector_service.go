package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ContentSelectorService narrows a parsed syllabus down to the requested
// modules. Its output string is the only enforcement surface the
// downstream model ever sees, which is why the envelope repeats the
// restriction so many times.
type ContentSelectorService interface {
	// SelectContent never fails; when nothing matches it returns a
	// literal error payload that is itself usable as prompt content.
	SelectContent(moduleMap *ModuleMap, requested []string) (content string, found []string)
}

type contentSelectorService struct{}

func NewContentSelectorService() ContentSelectorService {
	return &contentSelectorService{}
}

func (s *contentSelectorService) SelectContent(moduleMap *ModuleMap, requested []string) (string, []string) {
	var sections []string
	var found []string

	for _, label := range requested {
		if content, ok := moduleMap.Content(label); ok {
			sections = append(sections, fmt.Sprintf("\n=== %s CONTENT ONLY ===", label))
			sections = append(sections, content, "")
			found = append(found, label)
			continue
		}

		// Loose match: same module number under a different surface form,
		// first hit in syllabus order wins.
		num := extractModuleNumber(label)
		if num == "" {
			continue
		}
		for _, key := range moduleMap.Labels() {
			if extractModuleNumber(key) != num {
				continue
			}
			content, _ := moduleMap.Content(key)
			sections = append(sections, fmt.Sprintf("\n=== %s CONTENT ONLY ===", label))
			sections = append(sections, content, "")
			found = append(found, label)
			break
		}
	}

	if len(found) == 0 {
		log.Error().Strs("selected", requested).Strs("available", moduleMap.Labels()).
			Msg("No selected modules found in syllabus")
		return missingModulesPayload(requested, moduleMap.Labels()), nil
	}

	log.Info().Strs("found", found).Msg("Extracted content for selected modules")
	return strictContentEnvelope(requested, found, strings.Join(sections, "\n")), found
}

// missingModulesPayload is deliberately valid prompt content: it tells
// the generator why it cannot comply instead of failing the request here.
func missingModulesPayload(requested, available []string) string {
	return fmt.Sprintf(`
ERROR: Cannot generate questions for the selected modules.

SELECTED MODULES: %s
AVAILABLE MODULES IN SYLLABUS: %s

Please check that the module names are correct and exist in the uploaded syllabus.
Supported formats: "Module 1", "Module 2", etc.
`, strings.Join(requested, ", "), strings.Join(available, ", "))
}

func strictContentEnvelope(requested, found []string, body string) string {
	requestedStr := strings.Join(requested, ", ")
	return fmt.Sprintf(`
ULTRA STRICT INSTRUCTION: You MUST generate questions ONLY from the specific module content below.

SELECTED MODULES: %s
AVAILABLE CONTENT: %s

=== MODULE-SPECIFIC CONTENT ===
%s

CRITICAL RULES:
1. Generate questions ONLY from the content above
2. DO NOT use any knowledge outside this content
3. Each question must relate to topics mentioned in the selected modules
4. Tag each question with the correct module name from: %s
5. IGNORE all other syllabus content not shown above
6. DO NOT mention any concepts, terms, or topics not explicitly listed in the content above
7. STICK STRICTLY to the topics shown: only use words and concepts that appear in the content above

FORBIDDEN: Questions about topics not explicitly mentioned in the selected module content above.
ABSOLUTELY FORBIDDEN: Using your general knowledge about any subject beyond the provided content.`,
		requestedStr, strings.Join(found, ", "), body, requestedStr)
}
