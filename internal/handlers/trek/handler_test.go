package trek_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "trekdesk/infras/otel/mocks"
	s3Mocks "trekdesk/infras/s3/mocks"
	"trekdesk/internal/domains/trek/model/dto"
	serviceMocks "trekdesk/internal/domains/trek/service/mocks"
	"trekdesk/internal/handlers/media"
	"trekdesk/internal/handlers/trek"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
)

const payload = `{"name":"Hampta Pass","location":"Manali","batches":[{"start_date":"2026-06-01","end_date":"2026-06-05"}]}`

type fixture struct {
	service *serviceMocks.MockTrek
	store   *s3Mocks.MockS3
	router  chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		service: serviceMocks.NewMockTrek(ctrl),
		store:   s3Mocks.NewMockS3(ctrl),
		router:  chi.NewRouter(),
	}

	handler := trek.New(f.service, media.NewUploader(f.store), otelMocks.NewOtel())
	handler.Router(f.router)

	return f
}

func multipartRequest(t *testing.T, method, target, body string, covers int) *http.Request {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	require.NoError(t, writer.WriteField("payload", body))

	for i := range covers {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cover_image"; filename="cover-%d.png"`, i))
		header.Set("Content-Type", "image/png")

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	request := httptest.NewRequest(method, target, buf)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func serve(router chi.Router, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestCreateTrek(t *testing.T) {
	const coverURL = "https://cdn/treks/cover-0.png"

	t.Run("uploads the cover and creates the trek", func(t *testing.T) {
		f := setup(t)

		f.store.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), media.DirectoryTreks, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(coverURL, nil)
		f.service.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.TrekRequest, refs dto.MediaRefs) (dto.CreateTrekResponse, error) {
				assert.Equal(t, coverURL, refs.CoverImage)
				assert.Empty(t, refs.Gallery)
				assert.Equal(t, "Hampta Pass", req.Name)
				require.Len(t, req.Batches, 1)

				return dto.CreateTrekResponse{ID: 7}, nil
			})

		res := serve(f.router, multipartRequest(t, http.MethodPost, "/treks/", payload, 1))

		assert.Equal(t, http.StatusCreated, res.Code)
	})

	t.Run("discards the cover when the service fails", func(t *testing.T) {
		f := setup(t)

		f.store.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), media.DirectoryTreks, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(coverURL, nil)
		f.service.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.CreateTrekResponse{}, failure.Duplicate("trek name already exists"))
		f.store.EXPECT().DeleteByURL(gomock.Any(), coverURL).Return(nil)

		res := serve(f.router, multipartRequest(t, http.MethodPost, "/treks/", payload, 1))

		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("rejects a second cover before uploading", func(t *testing.T) {
		f := setup(t)

		res := serve(f.router, multipartRequest(t, http.MethodPost, "/treks/", payload, 2))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("rejects an invalid payload", func(t *testing.T) {
		f := setup(t)

		res := serve(f.router, multipartRequest(t, http.MethodPost, "/treks/", `{"location":"Manali"}`, 0))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestUpdateTrekInvalidID(t *testing.T) {
	f := setup(t)

	res := serve(f.router, multipartRequest(t, http.MethodPut, "/treks/abc", payload, 0))

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetTreksFilters(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTreksResponse, error) {
			require.Len(t, filter.Filters, 2)

			name, _ := filter.Filters[0].(gDto.Filter)
			difficulty, _ := filter.Filters[1].(gDto.Filter)

			assert.Equal(t, "ever", name.Value)
			assert.Equal(t, gDto.FilterOperatorLike, name.Operator)
			assert.Equal(t, "hard", difficulty.Value)

			return dto.GetTreksResponse{}, nil
		})

	res := serve(f.router, httptest.NewRequest(http.MethodGet, "/treks/?difficulty=hard&name=ever", nil))

	assert.Equal(t, http.StatusOK, res.Code)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
