package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	articlesvc "storefront/internal/service/article"
)

type articleHandlers struct {
	articles *articlesvc.Service
}

func (h *articleHandlers) list(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *articleHandlers) get(c *gin.Context) {
	view, err := h.articles.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type createArticleRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Body  string `json:"body"`
}

func (h *articleHandlers) create(c *gin.Context) {
	u, _ := currentUser(c)
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	article, err := h.articles.Create(c.Request.Context(), u, req.Title, req.Slug, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

type addCommentRequest struct {
	ParentID *string `json:"parentId"`
	Body     string  `json:"body" binding:"required"`
}

func (h *articleHandlers) addComment(c *gin.Context) {
	u, _ := currentUser(c)
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	comment, err := h.articles.AddComment(c.Request.Context(), u.ID, c.Param("slug"), req.ParentID, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *articleHandlers) deleteComment(c *gin.Context) {
	u, _ := currentUser(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.articles.DeleteComment(c.Request.Context(), u, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
