package request

// CreateFolderRequest represents a create folder request
type CreateFolderRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"required"`
}

// UpdateFolderRequest represents an update folder request
type UpdateFolderRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
