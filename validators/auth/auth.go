package authValidator

import (
	"regexp"
	"strings"
	"unicode"

	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Nombre          string `json:"nombre" form:"nombre"`
	Apellido        string `json:"apellido" form:"apellido"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

// Register validator middleware. Every field is evaluated; violations are
// collected per field and returned together with the submitted values.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Nombre = strings.TrimSpace(reqData.Nombre)
		reqData.Apellido = strings.TrimSpace(reqData.Apellido)
		reqData.Email = strings.TrimSpace(reqData.Email)

		errores := make(map[string]string)

		// Validate first name
		if len(reqData.Nombre) == 0 {
			errores["nombre"] = "El nombre es requerido"
		} else if len([]rune(reqData.Nombre)) < 2 {
			errores["nombre"] = "El nombre debe tener al menos 2 caracteres"
		} else if !isAlpha(reqData.Nombre) {
			errores["nombre"] = "El nombre solo puede contener letras"
		}

		// Validate last name
		if len(reqData.Apellido) == 0 {
			errores["apellido"] = "El apellido es requerido"
		} else if len([]rune(reqData.Apellido)) < 2 {
			errores["apellido"] = "El apellido debe tener al menos 2 caracteres"
		} else if !isAlpha(reqData.Apellido) {
			errores["apellido"] = "El apellido solo puede contener letras"
		}

		// Validate email, including the taken check against the store
		if len(reqData.Email) == 0 {
			errores["email"] = "El email es requerido"
		} else if !emailRegex.MatchString(reqData.Email) {
			errores["email"] = "El email no es válido"
		} else if err := database.Database.Db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
			errores["email"] = "El email ya está registrado"
		}

		// Validate password
		if len(reqData.Password) == 0 {
			errores["password"] = "La contraseña es requerida"
		} else if len(reqData.Password) < 4 {
			errores["password"] = "La contraseña debe tener al menos 4 caracteres"
		} else if reqData.Password != reqData.ConfirmPassword {
			errores["password"] = "Las contraseñas no coinciden"
		}

		if len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, errores, reqData)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}
