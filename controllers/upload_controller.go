package controllers

import (
	"context"

	"stayhub/config"
	"stayhub/response"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadImage pushes a multipart file to Cloudinary and returns its URL.
// Used by the dashboard for hotel images.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided.")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not open file.")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
