package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sonet/internal/ports/content"
)

type PostController struct{ ec EngagementUseCase }

func NewPostController(ec EngagementUseCase) *PostController { return &PostController{ec: ec} }

// requesterID pulls the authenticated user ID the JWT middleware stored in
// the gin context.
func requesterID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return "", false
	}
	return id, true
}

func pageFromQuery(c *gin.Context) (content.Page, bool) {
	offsetStr := c.DefaultQuery("offset", "0")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(content.DefaultPageSize))

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return content.Page{}, false
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return content.Page{}, false
	}
	return content.Page{Offset: offset, Limit: limit}, true
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	res, err := ctl.ec.CreatePost(c.Request.Context(), req.Title, req.Body, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ModifyPost(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	res, err := ctl.ec.ModifyPost(c.Request.Context(), c.Param("postId"), req.Title, req.Body, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := ctl.ec.DeletePost(c.Request.Context(), c.Param("postId"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (ctl *PostController) ListFeed(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	posts, err := ctl.ec.ListFeed(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ctl *PostController) ListMyFeed(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	posts, err := ctl.ec.ListMyFeed(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ctl *PostController) LikePost(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := ctl.ec.LikePost(c.Request.Context(), c.Param("postId"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post liked"})
}

func (ctl *PostController) CountLikes(c *gin.Context) {
	count, err := ctl.ec.CountLikes(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (ctl *PostController) CommentOnPost(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	res, err := ctl.ec.CommentOnPost(c.Request.Context(), c.Param("postId"), userID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ListComments(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	comments, err := ctl.ec.ListComments(c.Request.Context(), c.Param("postId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
