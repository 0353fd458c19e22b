package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akbusiness/food-store-backend/internal/contract"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Add(contract.ProductList.Method, contract.ProductList.Path, h.listProducts)
	app.Add(contract.ProductGet.Method, contract.ProductGet.Path, h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Add(contract.ProductCreate.Method, contract.ProductCreate.Path, h.createProduct)
	app.Add(contract.ProductUpdate.Method, contract.ProductUpdate.Path, h.updateProduct)
	app.Add(contract.ProductDelete.Method, contract.ProductDelete.Path, h.deleteProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	filter := contract.ProductListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	products, err := h.service.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	req := new(contract.CreateProductRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationError{Message: "Validation error: malformed body"})
	}
	if ve := contract.Validate(req); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ve)
	}

	created, err := h.service.Create(*req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	req := new(contract.UpdateProductRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationError{Message: "Validation error: malformed body"})
	}
	if ve := contract.Validate(req); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ve)
	}

	updated, err := h.service.Update(id, *req)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
