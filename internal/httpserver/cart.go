package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "storefront/internal/service/cart"
)

type cartHandlers struct {
	cart *cartsvc.Service
}

func (h *cartHandlers) get(c *gin.Context) {
	u, _ := currentUser(c)
	view, err := h.cart.Get(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *cartHandlers) add(c *gin.Context) {
	u, _ := currentUser(c)
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.cart.Add(c.Request.Context(), u.ID, req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *cartHandlers) remove(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cart.Remove(c.Request.Context(), u.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *cartHandlers) toggle(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "productId")
	if !ok {
		return
	}
	result, err := h.cart.Toggle(c.Request.Context(), u.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type adjustQuantityRequest struct {
	Direction string `json:"direction" binding:"required"`
}

func (h *cartHandlers) adjustQuantity(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req adjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.cart.AdjustQuantity(c.Request.Context(), u.ID, id, req.Direction)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
