package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	favoritesvc "storefront/internal/service/favorite"
)

type favoriteHandlers struct {
	favorites *favoritesvc.Service
}

func (h *favoriteHandlers) toggle(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "productId")
	if !ok {
		return
	}
	result, err := h.favorites.Toggle(c.Request.Context(), u.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *favoriteHandlers) list(c *gin.Context) {
	u, _ := currentUser(c)
	ids, err := h.favorites.ListProductIDs(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productIds": ids})
}
