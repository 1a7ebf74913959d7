package meGustaController

import (
	"log"

	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"
	"parqueaventura/utils"

	"github.com/gofiber/fiber/v2"
)

// DarMeGusta records that the acting user liked a visit. Liking the same
// visit twice is an informational no-op, never an error. There is no
// unlike operation.
func DarMeGusta(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	visitaID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Identificador inválido!", nil)
	}

	db := database.Database.Db

	var visita models.Visit
	if err := db.First(&visita, visitaID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Visita no encontrada!", nil)
	}

	var existing models.Like
	if err := db.Where("visit_id = ? AND user_id = ?", visita.ID, userID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, `Ya has dado "Me gusta" a esta visita`, fiber.Map{
			"redirect": "/visitas/ver/" + c.Params("id"),
		})
	}

	meGusta := models.Like{
		VisitID: visita.ID,
		UserID:  userID,
	}

	if err := db.Create(&meGusta).Error; err != nil {
		log.Printf("Error saving like for visit %d: %v", visita.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo registrar el me gusta!", nil)
	}

	// Notify the visit owner, unless they liked their own visit
	if visita.VisitorID != userID {
		var owner models.User
		if err := db.First(&owner, visita.VisitorID).Error; err == nil {
			likerName, _ := c.Locals("usuarioNombre").(string)
			utils.SendLikeNotificationEmail(owner.Email, owner.FullName(), likerName, visita.Park)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, `¡Gracias por tu "Me gusta"!`, fiber.Map{
		"redirect": "/visitas/ver/" + c.Params("id"),
	})
}
