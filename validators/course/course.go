package courseValidator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ContentPayload is one submitted content node. Children nest to
// arbitrary depth; FileKey names the multipart part carrying the
// node's file, if any.
type ContentPayload struct {
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Type     string           `json:"type"`
	FileKey  string           `json:"file_key"`
	Children []ContentPayload `json:"children"`
}

// ModulePayload is one submitted module with its root content nodes.
type ModulePayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Contents    []ContentPayload `json:"contents"`
}

// CoursePayload is the full course document submitted on create/update.
type CoursePayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Modules     []ModulePayload `json:"modules"`
}

var validContentTypes = map[string]bool{
	courseModels.ContentTypeText:     true,
	courseModels.ContentTypeVideo:    true,
	courseModels.ContentTypeDocument: true,
	courseModels.ContentTypeQuiz:     true,
}

// parseCoursePayload reads the course document from a JSON body or, for
// multipart submissions, from form fields with the module tree as a JSON
// string in the "modules" field.
func parseCoursePayload(c *fiber.Ctx) (*CoursePayload, error) {
	payload := new(CoursePayload)

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		payload.Title = c.FormValue("title")
		payload.Description = c.FormValue("description")
		payload.Category = c.FormValue("category")

		if raw := c.FormValue("modules"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &payload.Modules); err != nil {
				return nil, err
			}
		}
		return payload, nil
	}

	if err := c.BodyParser(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func addError(errors map[string][]string, field, message string) {
	errors[field] = append(errors[field], message)
}

// validateCoursePayload checks the whole submitted document. Error keys
// address the offending field by path ("modules.0.contents.1.type");
// content nodes are validated recursively at every depth.
func validateCoursePayload(payload *CoursePayload) map[string][]string {
	errors := make(map[string][]string)

	payload.Title = strings.TrimSpace(payload.Title)

	if payload.Title == "" {
		addError(errors, "title", "Title is required!")
	} else if len(payload.Title) > 255 {
		addError(errors, "title", "Title must not exceed 255 characters!")
	}

	if len(payload.Modules) == 0 {
		addError(errors, "modules", "At least one module is required!")
	}

	for i := range payload.Modules {
		module := &payload.Modules[i]
		path := fmt.Sprintf("modules.%d", i)

		module.Title = strings.TrimSpace(module.Title)

		if module.Title == "" {
			addError(errors, path+".title", "Module title is required!")
		} else if len(module.Title) > 255 {
			addError(errors, path+".title", "Module title must not exceed 255 characters!")
		}

		if len(module.Contents) == 0 {
			addError(errors, path+".contents", "At least one content item is required!")
		}

		for j := range module.Contents {
			validateContentPayload(&module.Contents[j], fmt.Sprintf("%s.contents.%d", path, j), errors)
		}
	}

	return errors
}

func validateContentPayload(content *ContentPayload, path string, errors map[string][]string) {
	content.Title = strings.TrimSpace(content.Title)

	if content.Title == "" {
		addError(errors, path+".title", "Content title is required!")
	} else if len(content.Title) > 255 {
		addError(errors, path+".title", "Content title must not exceed 255 characters!")
	}

	if !validContentTypes[content.Type] {
		addError(errors, path+".type", "Content type must be text, video, document, or quiz!")
	}

	for k := range content.Children {
		validateContentPayload(&content.Children[k], fmt.Sprintf("%s.children.%d", path, k), errors)
	}
}

// CreateCourse validates a course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := parseCoursePayload(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCoursePayload(payload); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", payload)
		return c.Next()
	}
}

// UpdateCourse validates a course replacement request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		payload, err := parseCoursePayload(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCoursePayload(payload); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourse", payload)
		return c.Next()
	}
}

// CourseID validates the course id path parameter for get/delete requests
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func parseCourseID(c *fiber.Ctx) (int, error) {
	courseIDStr := strings.TrimSpace(c.Params("id"))
	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil || courseID <= 0 {
		return 0, fmt.Errorf("invalid course id %q", courseIDStr)
	}
	return courseID, nil
}
