package visitaValidator

import (
	"strconv"
	"strings"
	"time"

	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"

	"github.com/gofiber/fiber/v2"
)

// VisitRequest carries the visit form fields. Rating and date stay strings
// until validated.
type VisitRequest struct {
	Parque      string `json:"parque" form:"parque"`
	Rating      string `json:"rating" form:"rating"`
	FechaVisita string `json:"fecha_visita" form:"fecha_visita"`
	Detalles    string `json:"detalles" form:"detalles"`
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ValidateFields applies the field rules shared by create and edit. The
// rating checks are deliberately independent: a non-numeric value fails
// the digit rule and is also treated as out of range, so the later message
// wins on the shared key.
func ValidateFields(parque, rating, fechaVisita, detalles string) map[string]string {
	errores := make(map[string]string)

	if len(parque) == 0 {
		errores["parque"] = "El nombre del parque es requerido"
	}

	if len(rating) == 0 {
		errores["rating"] = "El rating es requerido"
	}
	if !isDigits(rating) {
		errores["rating"] = "El rating debe ser un número"
	}
	if n, err := strconv.Atoi(rating); err != nil || n < 1 || n > 5 {
		errores["rating"] = "El rating debe estar entre 1 y 5"
	}

	fechaMaxima := time.Now().Format("2006-01-02")
	if len(fechaVisita) == 0 {
		errores["fecha_visita"] = "La fecha de visita es requerida"
	} else if fechaVisita > fechaMaxima {
		errores["fecha_visita"] = "La fecha de visita no puede ser mayor a la fecha actual"
	}

	if len(detalles) == 0 {
		errores["detalles"] = "Los detalles son requeridos"
	}

	return errores
}

// Create validator middleware. The duplicate-park probe runs before the
// field rules; an empty park name overwrites the duplicate message on the
// shared key, matching the original form behavior.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)

		reqData := new(VisitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Parque = strings.TrimSpace(reqData.Parque)

		errores := make(map[string]string)

		var existing models.Visit
		if err := database.Database.Db.Where("park = ? AND visitor_id = ?", reqData.Parque, userID).First(&existing).Error; err == nil {
			errores["parque"] = "Ya has registrado una visita a este parque antes"
		}

		for field, message := range ValidateFields(reqData.Parque, reqData.Rating, reqData.FechaVisita, reqData.Detalles) {
			errores[field] = message
		}

		if len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, errores, reqData)
		}

		c.Locals("validatedVisit", reqData)
		return c.Next()
	}
}
