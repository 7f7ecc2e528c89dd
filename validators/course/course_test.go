package courseValidator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPayload() *CoursePayload {
	return &CoursePayload{
		Title: "Go for beginners",
		Modules: []ModulePayload{
			{
				Title: "Basics",
				Contents: []ContentPayload{
					{Title: "Hello", Type: "text", Body: "hello world"},
					{Title: "Setup", Type: "video", Children: []ContentPayload{
						{Title: "Linux", Type: "document"},
						{Title: "Quiz", Type: "quiz"},
					}},
				},
			},
		},
	}
}

func TestValidateCoursePayloadValid(t *testing.T) {
	errors := validateCoursePayload(validPayload())
	assert.Empty(t, errors)
}

func TestValidateCoursePayloadTitle(t *testing.T) {
	payload := validPayload()
	payload.Title = "   "
	errors := validateCoursePayload(payload)
	assert.Contains(t, errors, "title")

	payload = validPayload()
	payload.Title = strings.Repeat("x", 256)
	errors = validateCoursePayload(payload)
	assert.Contains(t, errors, "title")
}

func TestValidateCoursePayloadModules(t *testing.T) {
	payload := validPayload()
	payload.Modules = nil
	errors := validateCoursePayload(payload)
	assert.Contains(t, errors, "modules")

	payload = validPayload()
	payload.Modules[0].Title = ""
	errors = validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.title")

	payload = validPayload()
	payload.Modules[0].Contents = nil
	errors = validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.contents")
}

func TestValidateCoursePayloadContentType(t *testing.T) {
	payload := validPayload()
	payload.Modules[0].Contents[0].Type = "slideshow"
	errors := validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.contents.0.type")

	payload = validPayload()
	payload.Modules[0].Contents[0].Type = ""
	errors = validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.contents.0.type")
}

// Children are validated at every depth, not just the top level
func TestValidateCoursePayloadRecursesIntoChildren(t *testing.T) {
	payload := validPayload()
	payload.Modules[0].Contents[1].Children[0].Title = ""
	errors := validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.contents.1.children.0.title")

	payload = validPayload()
	payload.Modules[0].Contents[1].Children[1].Children = []ContentPayload{
		{Title: "Deep", Type: "hologram"},
	}
	errors = validateCoursePayload(payload)
	assert.Contains(t, errors, "modules.0.contents.1.children.1.children.0.type")
}

func TestValidateCoursePayloadCollectsAllErrors(t *testing.T) {
	payload := &CoursePayload{
		Modules: []ModulePayload{
			{Contents: []ContentPayload{{Type: "bogus"}}},
		},
	}

	errors := validateCoursePayload(payload)
	assert.Contains(t, errors, "title")
	assert.Contains(t, errors, "modules.0.title")
	assert.Contains(t, errors, "modules.0.contents.0.title")
	assert.Contains(t, errors, "modules.0.contents.0.type")
}
