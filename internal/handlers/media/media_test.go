package media_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trekdesk/infras/s3/mocks"
	"trekdesk/internal/handlers/media"
	"trekdesk/shared/failure"
)

type part struct {
	name        string
	contentType string
	size        int
}

func buildForm(t *testing.T, field string, parts ...part) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, p.name))
		header.Set("Content-Type", p.contentType)

		w, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = w.Write(bytes.Repeat([]byte("x"), p.size))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)

	return form
}

func TestValidate(t *testing.T) {
	form := buildForm(t, "gallery",
		part{name: "a.png", contentType: "image/png", size: 10},
		part{name: "b.pdf", contentType: "application/pdf", size: 10},
	)

	headers := media.Files(form, "gallery")
	require.Len(t, headers, 2)

	assert.NoError(t, media.Validate(headers[0]))
	assert.True(t, failure.IsKind(media.Validate(headers...), failure.KindValidation))
	assert.Nil(t, media.Files(nil, "gallery"))
}

func TestUploadAll(t *testing.T) {
	form := buildForm(t, "gallery",
		part{name: "a.png", contentType: "image/png", size: 10},
		part{name: "b.jpg", contentType: "image/jpeg", size: 10},
		part{name: "c.jpg", contentType: "image/jpeg", size: 10},
	)
	headers := media.Files(form, "gallery")

	t.Run("returns urls in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockS3(ctrl)

		gomock.InOrder(
			store.EXPECT().UploadFile(gomock.Any(), "", media.DirectoryTreks, gomock.Any(), headers[0], gomock.Any()).Return("https://cdn/treks/a.png", nil),
			store.EXPECT().UploadFile(gomock.Any(), "", media.DirectoryTreks, gomock.Any(), headers[1], gomock.Any()).Return("https://cdn/treks/b.jpg", nil),
			store.EXPECT().UploadFile(gomock.Any(), "", media.DirectoryTreks, gomock.Any(), headers[2], gomock.Any()).Return("https://cdn/treks/c.jpg", nil),
		)

		urls, err := media.NewUploader(store).UploadAll(context.Background(), media.DirectoryTreks, headers)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn/treks/a.png", "https://cdn/treks/b.jpg", "https://cdn/treks/c.jpg"}, urls)
	})

	t.Run("discards earlier uploads on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockS3(ctrl)

		store.EXPECT().UploadFile(gomock.Any(), "", media.DirectoryTreks, gomock.Any(), headers[0], gomock.Any()).Return("https://cdn/treks/a.png", nil)
		store.EXPECT().UploadFile(gomock.Any(), "", media.DirectoryTreks, gomock.Any(), headers[1], gomock.Any()).Return("", errors.New("bucket unavailable"))
		store.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/treks/a.png").Return(nil)

		urls, err := media.NewUploader(store).UploadAll(context.Background(), media.DirectoryTreks, headers)

		require.Error(t, err)
		assert.Nil(t, urls)
	})
}

func TestDiscardLogsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockS3(ctrl)

	store.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/a").Return(errors.New("gone"))
	store.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/b").Return(nil)

	media.NewUploader(store).Discard(context.Background(), "https://cdn/a", "https://cdn/b")
}
