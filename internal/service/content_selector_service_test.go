package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectContent_ExactMatch(t *testing.T) {
	modules := newModuleMap()
	modules.add("Module 1", "Module 1: Intro\nresistors and capacitors")
	modules.add("Module 2", "Module 2: Logic\ngates and flip-flops")

	selector := NewContentSelectorService()
	content, found := selector.SelectContent(modules, []string{"Module 2"})

	assert.Equal(t, []string{"Module 2"}, found)
	assert.Contains(t, content, "ULTRA STRICT INSTRUCTION")
	assert.Contains(t, content, "=== Module 2 CONTENT ONLY ===")
	assert.Contains(t, content, "gates and flip-flops")
	assert.NotContains(t, content, "resistors and capacitors")
}

func TestSelectContent_PreservesRequestOrder(t *testing.T) {
	modules := newModuleMap()
	modules.add("Module 1", "Module 1 content here")
	modules.add("Module 3", "Module 3 content here")

	_, found := NewContentSelectorService().SelectContent(modules, []string{"Module 3", "Module 1"})

	assert.Equal(t, []string{"Module 3", "Module 1"}, found)
}

func TestSelectContent_LooseNumericMatch(t *testing.T) {
	// Same module number under a different surface form still matches.
	modules := newModuleMap()
	modules.add("Unit 2", "Unit 2: Logic\ngates and flip-flops")

	content, found := NewContentSelectorService().SelectContent(modules, []string{"Module 2"})

	assert.Equal(t, []string{"Module 2"}, found)
	assert.Contains(t, content, "gates and flip-flops")
	// Section heading carries the requested label, not the syllabus key.
	assert.Contains(t, content, "=== Module 2 CONTENT ONLY ===")
}

func TestSelectContent_PartialMatch(t *testing.T) {
	modules := newModuleMap()
	modules.add("Module 1", "Module 1 content here")

	content, found := NewContentSelectorService().SelectContent(modules, []string{"Module 1", "Module 4"})

	assert.Equal(t, []string{"Module 1"}, found)
	assert.Contains(t, content, "Module 1 content here")
	assert.NotContains(t, content, "ERROR: Cannot generate questions")
}

func TestSelectContent_NothingFound(t *testing.T) {
	modules := newModuleMap()
	modules.add("Module 1", "Module 1 content here")
	modules.add("Module 2", "Module 2 content here")

	content, found := NewContentSelectorService().SelectContent(modules, []string{"Module 9"})

	assert.Nil(t, found)
	assert.Contains(t, content, "ERROR: Cannot generate questions")
	assert.Contains(t, content, "SELECTED MODULES: Module 9")
	assert.Contains(t, content, "AVAILABLE MODULES IN SYLLABUS: Module 1, Module 2")
}

func TestSelectContent_EmptySyllabus(t *testing.T) {
	content, found := NewContentSelectorService().SelectContent(newModuleMap(), []string{"Module 1"})

	require.Nil(t, found)
	assert.Contains(t, content, "ERROR: Cannot generate questions")
}
