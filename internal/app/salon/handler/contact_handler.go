package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/service"
)

type ContactHandler struct {
	contactService service.ContactServiceInterface
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator.New(),
	}
}

// CreateMessage handles POST /api/contact. Public.
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req entity.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	message, err := h.contactService.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetMessage handles GET /api/contact/:id. Admin only.
func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	message, err := h.contactService.GetMessage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get message"})
		return
	}

	c.JSON(http.StatusOK, message)
}

// GetAllMessages handles GET /api/contact. Admin only, newest first.
func (h *ContactHandler) GetAllMessages(c *gin.Context) {
	messages, err := h.contactService.GetAllMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// DeleteMessage handles DELETE /api/contact/:id. Admin only.
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.contactService.DeleteMessage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "Message deleted successfully",
	})
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
