package utils

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores documents in Cloudinary.
type CloudinaryUploader struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
}

// NewCloudinaryUploader initializes the Cloudinary client
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, uploadPreset string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, uploadPreset: uploadPreset}, nil
}

// Upload uploads a file to Cloudinary and returns the secure URL
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, publicID, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: u.uploadPreset,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
