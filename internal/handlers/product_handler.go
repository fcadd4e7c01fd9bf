package handlers

import (
	"errors"
	"log"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes: listing is open, mutation
// is staff-only behind the supplied middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired, staffOnly fiber.Handler) {
	router.Get("/products", h.HandleList)
	router.Post("/product", authRequired, staffOnly, h.HandleCreate)
	router.Patch("/product/:id", authRequired, staffOnly, h.HandleUpdate)
	router.Delete("/product/:id", authRequired, staffOnly, h.HandleDelete)
}

// HandleList returns one page of the catalog.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	page, err := h.service.ListProducts(c.QueryInt("page", 1), c.QueryInt("per_page", 0))
	if err != nil {
		log.Printf("failed to list products: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not list products")
	}
	return dataResponse(c, fiber.StatusOK, page)
}

// ProductRequest represents the request body for product creation.
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Img         string `json:"img" validate:"omitempty,url"`
	Price       int64  `json:"price"`
}

// HandleCreate adds a product to the catalog.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldErrorResponse(c, map[string]string{"body": "malformed request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Img:         req.Img,
		Price:       req.Price,
	}
	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("failed to create product: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not create product")
	}

	return dataResponse(c, fiber.StatusCreated, fiber.Map{
		"id":       product.ID,
		"messages": "product add",
	})
}

// ProductUpdateRequest represents the request body for a partial update.
// Absent fields stay untouched.
type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Img         *string `json:"img" validate:"omitempty,url"`
	Price       *int64  `json:"price"`
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldErrorResponse(c, map[string]string{"body": "malformed request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), services.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Img:         req.Img,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Not Found")
		}
		log.Printf("failed to update product %s: %v", c.Params("id"), err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not update product")
	}

	return dataResponse(c, fiber.StatusOK, product)
}

// HandleDelete removes a product from the catalog.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Not Found")
		}
		log.Printf("failed to delete product %s: %v", c.Params("id"), err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
