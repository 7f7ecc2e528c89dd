package authValidator

import (
	"regexp"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string][]string)

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = append(errors["name"], "Name must be at least 3 characters long!")
		}

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = append(errors["email"], "Invalid email!")
		}

		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = append(errors["password"], "Password must be at least 8 characters long!")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string][]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = append(errors["email"], "Invalid email!")
		}

		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = append(errors["password"], "Password must be at least 8 characters long!")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
