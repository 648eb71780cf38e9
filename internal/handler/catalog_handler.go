package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"nocturna/internal/errors"
	"nocturna/internal/model"
	"nocturna/internal/service"
)

// CatalogHandler handles menu and FAQ endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// MenuItemRequest represents one dish or drink in a menu import.
type MenuItemRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Available   *bool  `json:"available"`
}

// MenuCategoryRequest represents one category in a menu import.
type MenuCategoryRequest struct {
	Name  string            `json:"name" validate:"required,max=255"`
	Items []MenuItemRequest `json:"items" validate:"dive"`
}

// MenuImportRequest replaces the whole menu.
type MenuImportRequest struct {
	Categories []MenuCategoryRequest `json:"categories" validate:"dive"`
}

// FAQEntryRequest represents one question and answer.
type FAQEntryRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// FAQImportRequest replaces the whole FAQ.
type FAQImportRequest struct {
	Entries []FAQEntryRequest `json:"entries" validate:"dive"`
}

// ImportResponse reports how many rows an import wrote.
type ImportResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Menu godoc
// @Summary Menu with available items
// @Tags catalog
// @Produce json
// @Success 200 {array} model.MenuCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *CatalogHandler) Menu(c echo.Context) error {
	categories, err := h.catalogService.Menu(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// FAQ godoc
// @Summary Frequently asked questions
// @Tags catalog
// @Produce json
// @Success 200 {array} model.FAQEntry
// @Failure 500 {object} errors.ErrorResponse
// @Router /faq [get]
func (h *CatalogHandler) FAQ(c echo.Context) error {
	entries, err := h.catalogService.FAQ(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ReplaceMenu godoc
// @Summary Replace the menu
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuImportRequest true "Menu"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/menu [put]
func (h *CatalogHandler) ReplaceMenu(c echo.Context) error {
	var req MenuImportRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	categories, items, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_PRICE",
		})
	}

	if err := h.catalogService.ReplaceMenu(c.Request().Context(), categories); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, ImportResponse{
		Message: "menu replaced",
		Count:   items,
	})
}

// ReplaceFAQ godoc
// @Summary Replace the FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FAQImportRequest true "FAQ"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/faq [put]
func (h *CatalogHandler) ReplaceFAQ(c echo.Context) error {
	var req FAQImportRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	entries := make([]model.FAQEntry, 0, len(req.Entries))
	for i, e := range req.Entries {
		entries = append(entries, model.FAQEntry{Question: e.Question, Answer: e.Answer, Position: i})
	}

	if err := h.catalogService.ReplaceFAQ(c.Request().Context(), entries); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, ImportResponse{
		Message: "faq replaced",
		Count:   len(entries),
	})
}

// toModel converts the import into rows, keeping the order as positions.
func (r MenuImportRequest) toModel() ([]model.MenuCategory, int, error) {
	categories := make([]model.MenuCategory, 0, len(r.Categories))
	count := 0
	for i, cat := range r.Categories {
		category := model.MenuCategory{Name: cat.Name, Position: i}
		for j, item := range cat.Items {
			price, err := decimal.NewFromString(item.Price)
			if err != nil || price.IsNegative() {
				return nil, 0, &priceError{item: item.Name}
			}
			available := true
			if item.Available != nil {
				available = *item.Available
			}
			category.Items = append(category.Items, model.MenuItem{
				Name:        item.Name,
				Description: item.Description,
				Price:       price,
				Position:    j,
				Available:   available,
			})
			count++
		}
		categories = append(categories, category)
	}
	return categories, count, nil
}

type priceError struct {
	item string
}

func (e *priceError) Error() string {
	return "invalid price for " + e.item
}
