package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"counselhub/models"
	"counselhub/services/community"
)

// CommunityHandler exposes community post and chat message endpoints.
type CommunityHandler struct {
	Service community.CommunityService
}

func NewCommunityHandler(svc community.CommunityService) *CommunityHandler {
	return &CommunityHandler{Service: svc}
}

func (h *CommunityHandler) CreatePostHandler(c *gin.Context) {
	var req models.CommunityPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	post, err := h.Service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *CommunityHandler) GetPostHandler(c *gin.Context) {
	post, err := h.Service.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *CommunityHandler) ListPostsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	posts, err := h.Service.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *CommunityHandler) DeletePostHandler(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *CommunityHandler) AddMessageHandler(c *gin.Context) {
	var req models.CommunityMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.PostID = c.Param("postId")

	msg, err := h.Service.AddMessage(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *CommunityHandler) ListMessagesHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "200"), 10, 64)

	messages, err := h.Service.ListMessages(c.Request.Context(), c.Param("postId"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
