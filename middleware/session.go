package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// SessionStore keeps the opaque session token -> {usuarioId, usuarioNombre}
// mapping. Created at login, destroyed at logout.
var SessionStore *session.Store

// InitSessionStore must run before any route is registered.
func InitSessionStore() {
	SessionStore = session.New(session.Config{
		KeyLookup:      "cookie:session_id",
		Expiration:     24 * time.Hour,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
	})
}

// AuthRequired guards routes that need an authenticated actor. When no
// identity is present it short-circuits with the login redirect; otherwise
// it passes the user id and display name through request Locals so
// handlers never read the session themselves.
func AuthRequired(c *fiber.Ctx) error {
	sess, err := SessionStore.Get(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo leer la sesión!", nil)
	}

	userID, ok := sess.Get("usuarioId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Debes iniciar sesión para acceder a esta página.", fiber.Map{
			"redirect": "/login",
		})
	}

	c.Locals("userId", userID)
	if name, ok := sess.Get("usuarioNombre").(string); ok {
		c.Locals("usuarioNombre", name)
	}

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse returns the accumulated field errors together
// with the submitted values so the caller can re-display the form.
func ValidationErrorResponse(c *fiber.Ctx, errores map[string]string, datos interface{}) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", fiber.Map{
		"errores": errores,
		"datos":   datos,
	})
}
