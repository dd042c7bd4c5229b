package handlers

import (
	"net/http"

	"kitchenpos/models"

	"github.com/gin-gonic/gin"
)

// ── Order tables ────────────────────────────────────────────────────────────

type CreateTableRequest struct {
	NumberOfGuests int  `json:"number_of_guests"`
	Empty          bool `json:"empty"`
}

// CreateTable registers a dining table
func (h *Handler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := h.Tables.Create(c.Request.Context(), &models.OrderTable{
		NumberOfGuests: req.NumberOfGuests,
		Empty:          req.Empty,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// ListTables returns every dining table
func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.Tables.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// ── Table groups ────────────────────────────────────────────────────────────

type TableRef struct {
	ID uint `json:"id"`
}

type CreateTableGroupRequest struct {
	OrderTables []TableRef `json:"order_tables"`
}

// CreateTableGroup joins two or more tables
func (h *Handler) CreateTableGroup(c *gin.Context) {
	var req CreateTableGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := &models.TableGroup{OrderTables: make([]models.OrderTable, 0, len(req.OrderTables))}
	for _, ref := range req.OrderTables {
		candidate.OrderTables = append(candidate.OrderTables, models.OrderTable{ID: ref.ID})
	}

	group, err := h.TableGroups.Create(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table group created", "table_group": group})
}

// GetTableGroup returns a group with its member tables
func (h *Handler) GetTableGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	group, err := h.TableGroups.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table_group": group})
}

// Ungroup releases every member table from the group
func (h *Handler) Ungroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.TableGroups.Ungroup(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table group dissolved", "table_group_id": id})
}
