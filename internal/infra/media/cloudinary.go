// Package media implements image hosting against Cloudinary's unsigned
// upload endpoint: a plain multipart POST with the cloud name and upload
// preset, exactly the contract the storefront clients already use. The
// returned secure URL is stored as-is in documents.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"fogon/config"
	"fogon/internal/domain/service"

	"github.com/pkg/errors"
)

const uploadTimeout = 30 * time.Second

type cloudinaryUploader struct {
	endpoint   string
	preset     string
	httpClient *http.Client
}

// NewCloudinaryUploader creates the unsigned-upload client.
func NewCloudinaryUploader(cfg *config.Config) (service.MediaUploader, error) {
	if cfg.Cloudinary == nil || cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.UploadPreset == "" {
		return nil, errors.New("cloudinary cloud name and upload preset are required")
	}

	return &cloudinaryUploader{
		endpoint: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.Cloudinary.CloudName),
		preset:   cfg.Cloudinary.UploadPreset,
		httpClient: &http.Client{
			Timeout: uploadTimeout,
		},
	}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *cloudinaryUploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)

			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)

			return
		}
		if err := writer.WriteField("upload_preset", u.preset); err != nil {
			pw.CloseWithError(err)

			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, pr)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload request failed")
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode upload response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("upload rejected (%d): %s", resp.StatusCode, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("upload response missing secure_url")
	}

	return result.SecureURL, nil
}
