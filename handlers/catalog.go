package handlers

import (
	"net/http"

	"kitchenpos/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ── Products ────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

// CreateProduct registers a product that menus can be composed from
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Products.Create(c.Request.Context(), &models.Product{Name: req.Name, Price: req.Price})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// ListProducts returns every product
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// ── Menu groups ─────────────────────────────────────────────────────────────

type CreateMenuGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMenuGroup registers a menu classification
func (h *Handler) CreateMenuGroup(c *gin.Context) {
	var req CreateMenuGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.MenuGroups.Create(c.Request.Context(), &models.MenuGroup{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu group created", "menu_group": group})
}

// ListMenuGroups returns every menu group
func (h *Handler) ListMenuGroups(c *gin.Context) {
	groups, err := h.MenuGroups.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(groups), "menu_groups": groups})
}

// ── Menus ───────────────────────────────────────────────────────────────────

type MenuProductRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,min=1"`
}

type CreateMenuRequest struct {
	Name         string               `json:"name" binding:"required"`
	Price        decimal.Decimal      `json:"price"`
	MenuGroupID  uint                 `json:"menu_group_id"`
	MenuProducts []MenuProductRequest `json:"menu_products" binding:"dive"`
}

// CreateMenu composes a sellable menu from existing products
func (h *Handler) CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := &models.Menu{
		Name:         req.Name,
		Price:        req.Price,
		MenuGroupID:  req.MenuGroupID,
		MenuProducts: make([]models.MenuProduct, 0, len(req.MenuProducts)),
	}
	for _, line := range req.MenuProducts {
		candidate.MenuProducts = append(candidate.MenuProducts, models.MenuProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	menu, err := h.Menus.Create(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "menu": menu})
}

// ListMenus returns every menu with its composing products
func (h *Handler) ListMenus(c *gin.Context) {
	menus, err := h.Menus.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(menus), "menus": menus})
}
