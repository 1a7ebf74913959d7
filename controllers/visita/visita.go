package visitaController

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"
	visitaValidator "parqueaventura/validators/visita"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dashboard lists the caller's visits and everyone else's, both ordered by
// rating descending.
func Dashboard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	username, _ := c.Locals("usuarioNombre").(string)

	db := database.Database.Db

	var misVisitas []models.Visit
	if err := db.Where("visitor_id = ?", userID).Order("rating DESC").Find(&misVisitas).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudieron cargar las visitas!", nil)
	}

	var otrasVisitas []models.Visit
	if err := db.Where("visitor_id <> ?", userID).Order("rating DESC").
		Preload("Visitor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, last_name")
		}).
		Find(&otrasVisitas).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudieron cargar las visitas!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"username":     username,
		"misVisitas":   misVisitas,
		"otrasVisitas": otrasVisitas,
	})
}

// NewForm serves the empty visit form payload.
func NewForm(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"errores":     fiber.Map{},
		"datos":       fiber.Map{},
		"fechaMaxima": time.Now().Format("2006-01-02"),
	})
}

// Create persists a visit owned by the acting user. Field validation and
// the duplicate-park check already ran in the validator middleware.
func Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedVisit").(*visitaValidator.VisitRequest)

	rating, _ := strconv.Atoi(reqData.Rating)

	visita := models.Visit{
		Park:      reqData.Parque,
		Rating:    rating,
		VisitDate: reqData.FechaVisita,
		Details:   reqData.Detalles,
		VisitorID: userID,
	}

	if err := database.Database.Db.Create(&visita).Error; err != nil {
		log.Printf("Error saving visit to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo crear la visita!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Visita creada correctamente", fiber.Map{
		"redirect": "/dashboard",
		"visita":   visita,
	})
}

// EditForm serves the prefilled edit form for the owner.
func EditForm(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Identificador inválido!", nil)
	}

	var visita models.Visit
	if err := database.Database.Db.First(&visita, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Visita no encontrada!", nil)
	}

	if !visita.CanModify(userID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No tienes permisos para editar esta visita", fiber.Map{
			"redirect": "/dashboard",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"errores":     fiber.Map{},
		"visita":      visita,
		"fechaMaxima": time.Now().Format("2006-01-02"),
	})
}

// Update overwrites rating, date and details in place. Ownership is
// checked before any field validation runs; the park name must be
// resubmitted unchanged and is never overwritten.
func Update(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Identificador inválido!", nil)
	}

	var visita models.Visit
	if err := database.Database.Db.First(&visita, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Visita no encontrada!", nil)
	}

	if !visita.CanModify(userID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No tienes permisos para editar esta visita", fiber.Map{
			"redirect": "/dashboard",
		})
	}

	reqData := new(visitaValidator.VisitRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	reqData.Parque = strings.TrimSpace(reqData.Parque)

	errores := visitaValidator.ValidateFields(reqData.Parque, reqData.Rating, reqData.FechaVisita, reqData.Detalles)
	if _, present := errores["parque"]; !present && reqData.Parque != visita.Park {
		errores["parque"] = fmt.Sprintf("El nombre del parque debe ser igual al que ya estaba registrado: %s", visita.Park)
	}

	if len(errores) > 0 {
		return middleware.ValidationErrorResponse(c, errores, reqData)
	}

	rating, _ := strconv.Atoi(reqData.Rating)

	visita.Rating = rating
	visita.VisitDate = reqData.FechaVisita
	visita.Details = reqData.Detalles

	if err := database.Database.Db.Save(&visita).Error; err != nil {
		log.Printf("Error updating visit %d: %v", visita.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo actualizar la visita!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Visita actualizada con éxito", fiber.Map{
		"redirect": "/dashboard",
		"visita":   visita,
	})
}

// Delete removes the visit and its likes. Registered on both GET and POST,
// as the original app deletes on either verb.
func Delete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Identificador inválido!", nil)
	}

	db := database.Database.Db

	var visita models.Visit
	if err := db.First(&visita, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Visita no encontrada!", nil)
	}

	if !visita.CanModify(userID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No tienes permisos para eliminar esta visita", fiber.Map{
			"redirect": "/dashboard",
		})
	}

	if err := db.Where("visit_id = ?", visita.ID).Delete(&models.Like{}).Error; err != nil {
		log.Printf("Error deleting likes for visit %d: %v", visita.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo eliminar la visita!", nil)
	}

	// Hard delete so the (park, visitor) slot can be reused
	if err := db.Unscoped().Delete(&visita).Error; err != nil {
		log.Printf("Error deleting visit %d: %v", visita.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo eliminar la visita!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Visita eliminada correctamente", fiber.Map{
		"redirect": "/dashboard",
	})
}

// View returns a visit with its owner and whether the caller already
// liked it.
func View(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Identificador inválido!", nil)
	}

	db := database.Database.Db

	var visita models.Visit
	if err := db.Preload("Visitor", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, first_name, last_name")
	}).First(&visita, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Visita no encontrada!", nil)
	}

	var yaDioMeGusta bool
	if err := db.Where("visit_id = ? AND user_id = ?", visita.ID, userID).First(&models.Like{}).Error; err == nil {
		yaDioMeGusta = true
	}

	var totalMeGusta int64
	db.Model(&models.Like{}).Where("visit_id = ?", visita.ID).Count(&totalMeGusta)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"visita":              visita,
		"usuarioYaDioMeGusta": yaDioMeGusta,
		"totalMeGusta":        totalMeGusta,
	})
}
