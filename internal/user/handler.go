package user

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/akbusiness/food-store-backend/internal/contract"
	"github.com/akbusiness/food-store-backend/internal/middleware"
)

const sessionTTL = 24 * time.Hour

type Handler struct {
	service *Service
	secret  []byte
}

func NewHandler(service *Service, sessionSecret string) *Handler {
	return &Handler{service: service, secret: []byte(sessionSecret)}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Add(contract.Login.Method, contract.Login.Path, h.login)
	app.Add(contract.Logout.Method, contract.Logout.Path, h.logout)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Add(contract.CurrentUser.Method, contract.CurrentUser.Path, h.currentUser)
}

func (h *Handler) login(c *fiber.Ctx) error {
	req := new(contract.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationError{Message: "Validation error: malformed body"})
	}
	if ve := contract.Validate(req); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ve)
	}

	u, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}

	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to establish session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    signed,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(sanitizeUser(u))
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) currentUser(c *fiber.Ctx) error {
	id, err := UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	return c.JSON(sanitizeUser(u))
}

// UserIDFromCtx extracts the authenticated admin's id from the JWT the
// session middleware stored on the context.
func UserIDFromCtx(c *fiber.Ctx) (int, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, errors.New("no session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected claims type")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing")
	}
	return int(id), nil
}
