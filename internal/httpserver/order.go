package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersvc "storefront/internal/service/order"
)

type orderHandlers struct {
	orders *ordersvc.Service
}

type placeOrderRequest struct {
	ItemIDs []string `json:"itemIds"`
}

func (h *orderHandlers) place(c *gin.Context) {
	u, _ := currentUser(c)
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	order, err := h.orders.Place(c.Request.Context(), u.ID, req.ItemIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *orderHandlers) list(c *gin.Context) {
	u, _ := currentUser(c)
	orders, err := h.orders.List(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *orderHandlers) get(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), u.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *orderHandlers) setStatus(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.orders.SetStatus(c.Request.Context(), u, id, req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
