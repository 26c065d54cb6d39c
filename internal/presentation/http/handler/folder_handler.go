package handler

import (
	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/request"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService *service.FolderService
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// CreateFolder creates a new folder
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := h.folderService.CreateFolder(c.Request.Context(), &service.CreateFolderInput{
		UserID: *userID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Folder created successfully", folder)
}

// ListFolders lists the user's folders with trade counts
func (h *FolderHandler) ListFolders(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	folders, err := h.folderService.ListFolders(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Folders retrieved successfully", folders)
}

// UpdateFolder renames or recolors a folder
func (h *FolderHandler) UpdateFolder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid folder ID")
		return
	}

	var req request.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := h.folderService.UpdateFolder(c.Request.Context(), &service.UpdateFolderInput{
		UserID: *userID,
		ID:     id,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Folder updated successfully", folder)
}

// DeleteFolder deletes a folder, moving its trades to uncategorized
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid folder ID")
		return
	}

	if err := h.folderService.DeleteFolder(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Folder deleted successfully", nil)
}
