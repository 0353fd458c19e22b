package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akbusiness/food-store-backend/internal/contract"
	"github.com/akbusiness/food-store-backend/internal/metrics"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Add(contract.OrderCreate.Method, contract.OrderCreate.Path, h.createOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Add(contract.OrderList.Method, contract.OrderList.Path, h.listOrders)
	app.Add(contract.OrderGet.Method, contract.OrderGet.Path, h.getOrder)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	req := new(contract.CreateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationError{Message: "Validation error: malformed body"})
	}
	if ve := contract.Validate(req); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ve)
	}

	created, err := h.service.Place(*req)
	if err != nil {
		var unknown *UnknownProductError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": unknown.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	detail, err := h.service.GetWithItems(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(detail)
}
