package authController

import (
	"log"

	"parqueaventura/config"
	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"
	"parqueaventura/utils"
	authValidator "parqueaventura/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterForm serves the empty registration form payload.
func RegisterForm(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"errores": fiber.Map{},
		"datos":   fiber.Map{},
	})
}

// Register persists a new user. Field validation already ran in the
// validator middleware; the password is stored only as a bcrypt digest.
func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegistration").(*authValidator.RegisterRequest)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FirstName: reqData.Nombre,
		LastName:  reqData.Apellido,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
	}

	if err := database.Database.Db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo registrar el usuario!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.FullName())

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Usuario registrado correctamente", fiber.Map{
		"redirect": "/login",
		"usuario":  newUser,
	})
}

// LoginForm serves the empty login form payload.
func LoginForm(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"errores": fiber.Map{},
	})
}

// Login resolves the user by exact email match and verifies the password
// against the stored digest. The email-not-found and wrong-password
// replies stay distinct, as the original app behaves.
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Credenciales incorrectas", fiber.Map{
			"errores": fiber.Map{"email": "El email no está registrado"},
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Credenciales incorrectas", fiber.Map{
			"errores": fiber.Map{"password": "La contraseña es incorrecta"},
		})
	}

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		log.Printf("Error opening session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo iniciar la sesión!", nil)
	}

	sess.Set("usuarioId", user.ID)
	sess.Set("usuarioNombre", user.FullName())
	if err := sess.Save(); err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No se pudo iniciar la sesión!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bienvenido de nuevo", fiber.Map{
		"redirect": "/dashboard",
		"usuario": fiber.Map{
			"id":     user.ID,
			"nombre": user.FullName(),
		},
	})
}

// Logout clears the session.
func Logout(c *fiber.Ctx) error {
	sess, err := middleware.SessionStore.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("Error destroying session: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sesión cerrada correctamente", fiber.Map{
		"redirect": "/",
	})
}
