package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
	catalogsvc "storefront/internal/service/catalog"
	reviewsvc "storefront/internal/service/review"
)

type catalogHandlers struct {
	catalog *catalogsvc.Service
	reviews *reviewsvc.Service
	cart    *cartsvc.Service
}

func (h *catalogHandlers) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *catalogHandlers) listProducts(c *gin.Context) {
	in := catalogsvc.ListInput{
		NameSubstring: c.Query("name"),
		CategorySlug:  c.Query("category"),
	}
	if v := c.Query("minPrice"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be an integer amount of cents"})
			return
		}
		in.MinPriceCents = &cents
	}
	if v := c.Query("maxPrice"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be an integer amount of cents"})
			return
		}
		in.MaxPriceCents = &cents
	}
	in.Page, _ = strconv.Atoi(c.Query("page"))
	in.PerPage, _ = strconv.Atoi(c.Query("perPage"))

	page, err := h.catalog.ListProducts(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *catalogHandlers) getProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	// Authenticated viewers see whether the product already sits in
	// their cart; anonymous viewers always get false.
	inCart := false
	if u, authed := currentUser(c); authed {
		inCart, err = h.cart.HasProduct(c.Request.Context(), u.ID, id)
		if err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "inCart": inCart})
}

func (h *catalogHandlers) listReviews(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListByProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type submitReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

func (h *catalogHandlers) submitReview(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	review, err := h.reviews.Submit(c.Request.Context(), u.ID, id, req.Rating, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *catalogHandlers) deleteReview(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), u, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type saveProductRequest struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl"`
}

func (h *catalogHandlers) saveProduct(c *gin.Context) {
	u, _ := currentUser(c)
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product, err := h.catalog.SaveProduct(c.Request.Context(), u, domain.Product{
		ID:          req.ID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *catalogHandlers) deleteProduct(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), u, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
