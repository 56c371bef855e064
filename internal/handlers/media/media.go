// Package media uploads request files to object storage and removes them again
// when the operation they were uploaded for fails.
package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"trekdesk/infras/s3"
	"trekdesk/shared/failure"
	"trekdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	DirectoryTreks = "treks"
	DirectoryPosts = "posts"
)

type image struct {
	File *multipart.FileHeader `json:"file" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

type Uploader struct {
	s3 s3.S3
}

func NewUploader(s3 s3.S3) Uploader {
	return Uploader{s3: s3}
}

// Files returns the headers posted under field, or nil when the form has none.
func Files(form *multipart.Form, field string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	return form.File[field]
}

// Validate checks every header is an image within the size limit.
func Validate(headers ...*multipart.FileHeader) error {
	for _, header := range headers {
		if err := validator.ValidateStruct(&image{File: header}); err != nil {
			return failure.Validation(fmt.Sprintf("%s: %s", header.Filename, err.Error())) //nolint:wrapcheck
		}
	}

	return nil
}

// Upload stores one file and returns its public URL.
func (u Uploader) Upload(ctx context.Context, directory string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	defer file.Close()

	url, err := u.s3.UploadFile(ctx, "", directory, file, header, s3.ObjectName(header))
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", header.Filename, err)
	}

	return url, nil
}

// UploadAll stores every file. On failure the files already stored are discarded.
func (u Uploader) UploadAll(ctx context.Context, directory string, headers []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(headers))

	for _, header := range headers {
		url, err := u.Upload(ctx, directory, header)
		if err != nil {
			u.Discard(ctx, urls...)

			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// Discard deletes stored files. Failures are logged only.
func (u Uploader) Discard(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}

		if err := u.s3.DeleteByURL(ctx, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to discard uploaded file")
		}
	}
}
