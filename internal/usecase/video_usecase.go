package usecase

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bountyboard/pkg/s3"

	"github.com/google/uuid"
)

const (
	uploadURLExpiry = 15 * time.Minute
	maxVideoSizeMB  = 500
	videoKeyPrefix  = "submissions/"
)

var allowedVideoTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

type UploadURLResult struct {
	UploadURL string `json:"uploadUrl"`
	VideoURL  string `json:"videoUrl"`
	VideoKey  string `json:"videoKey"`
	ExpiresIn int    `json:"expiresIn"`
}

type VideoUseCase interface {
	GetUploadURL(fileName, contentType string, sizeBytes int64) (*UploadURLResult, error)
}

type videoUseCase struct {
	storage *s3.Client
}

func NewVideoUseCase(storage *s3.Client) VideoUseCase {
	return &videoUseCase{storage: storage}
}

// GetUploadURL validates the file and returns a presigned PUT URL so clients
// upload directly to object storage instead of through the API.
func (uc *videoUseCase) GetUploadURL(fileName, contentType string, sizeBytes int64) (*UploadURLResult, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("video storage is not configured")
	}

	defaultExt, ok := allowedVideoTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported video type %s", contentType)
	}
	if sizeBytes > maxVideoSizeMB*1024*1024 {
		return nil, fmt.Errorf("video exceeds the %dMB limit", maxVideoSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = defaultExt
	}
	key := videoKeyPrefix + uuid.New().String() + ext

	uploadURL, err := uc.storage.PresignUploadURL(key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return &UploadURLResult{
		UploadURL: uploadURL,
		VideoURL:  uc.storage.ObjectURL(key),
		VideoKey:  key,
		ExpiresIn: int(uploadURLExpiry.Seconds()),
	}, nil
}
