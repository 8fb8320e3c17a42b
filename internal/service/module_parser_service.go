package service

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// ModuleMap is an ordered mapping of "Module N" labels to the raw content
// block of that module (header line included). Built fresh per request.
type ModuleMap struct {
	labels  []string
	content map[string]string
}

func newModuleMap() *ModuleMap {
	return &ModuleMap{content: make(map[string]string)}
}

func (m *ModuleMap) add(label, content string) {
	if _, exists := m.content[label]; !exists {
		m.labels = append(m.labels, label)
	}
	m.content[label] = content
}

// Labels returns the module labels in the order they appear in the syllabus.
func (m *ModuleMap) Labels() []string { return m.labels }

// Content returns the content block for a label.
func (m *ModuleMap) Content(label string) (string, bool) {
	c, ok := m.content[label]
	return c, ok
}

func (m *ModuleMap) Len() int { return len(m.labels) }

// moduleHeaderPatterns is the precedence-ordered list of header matchers.
// Group 1 is always the module number. The first pattern that matches a
// line wins, so precedence is explicit in the slice order.
var moduleHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^module\s*(\d+)\s*[:.\-]?\s*(.*)$`),
	regexp.MustCompile(`(?i)^module\s*[:.\-]?\s*(\d+)\s*(.*)$`),
	regexp.MustCompile(`(?i)^chapter\s*(\d+)\s*[:.\-]?\s*(.*)$`),
	regexp.MustCompile(`(?i)^unit\s*(\d+)\s*[:.\-]?\s*(.*)$`),
	regexp.MustCompile(`^(\d+)\s*[:.\-]\s*(.*)$`),
}

type ModuleParserService interface {
	ParseModules(syllabusText string) *ModuleMap
}

type moduleParserService struct{}

func NewModuleParserService() ModuleParserService {
	return &moduleParserService{}
}

// ParseModules splits a syllabus into modules with a single line scan.
// "Chapter 3" and "Module 3" both open the label "Module 3" (the literal
// matched digits name the module, not its position). Lines before the
// first recognized header are discarded.
func (s *moduleParserService) ParseModules(syllabusText string) *ModuleMap {
	modules := newModuleMap()

	currentLabel := ""
	var currentContent []string

	flush := func() {
		if currentLabel != "" && len(currentContent) > 0 {
			modules.add(currentLabel, strings.Join(currentContent, "\n"))
		}
	}

	for _, line := range strings.Split(syllabusText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		headerFound := false
		for _, pattern := range moduleHeaderPatterns {
			match := pattern.FindStringSubmatch(trimmed)
			if match == nil {
				continue
			}
			flush()
			currentLabel = "Module " + match[1]
			currentContent = []string{trimmed} // header line belongs to the module
			headerFound = true
			break
		}

		if !headerFound && currentLabel != "" {
			currentContent = append(currentContent, trimmed)
		}
	}
	flush()

	log.Debug().Strs("modules", modules.Labels()).Msg("Parsed modules from syllabus")
	return modules
}
