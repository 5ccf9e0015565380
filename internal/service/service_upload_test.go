package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/mock"
	"github.com/enterprise-sync/asingest/models"
)

func newTestUploadSvc(t *testing.T, ctrl *gomock.Controller) (UploadService, *mock.MockIngestionAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockIngestionAdapter(ctrl)
	svc := NewUploadService(mockAdapter, logger.Nop())

	return svc, mockAdapter
}

func TestUploadService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	job := models.UploadJob{
		DocumentPath: "report.pdf",
		Attachments:  []string{"annex.pdf"},
		Metadata:     models.DocumentMetadata{"title": "Q2"},
	}

	mockAdapter.EXPECT().
		UploadDocument(ctx, "tok-abc", job).
		Return(models.UploadResponse{StatusCode: http.StatusCreated, Body: []byte(`{"documentId":"doc-1"}`)}, nil)

	resp, err := svc.Upload(ctx, "tok-abc", job)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"documentId":"doc-1"}`, string(resp.Body))
}

func TestUploadService_Upload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	adapterErr := fmt.Errorf("attachment: %w: /tmp/no-such-annex.pdf", adapter.ErrFileNotFound)
	mockAdapter.EXPECT().
		UploadDocument(ctx, "tok-abc", gomock.Any()).
		Return(models.UploadResponse{}, adapterErr)

	_, err := svc.Upload(ctx, "tok-abc", models.UploadJob{DocumentPath: "report.pdf"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpload)
	assert.Contains(t, err.Error(), "/tmp/no-such-annex.pdf")
}

func TestUploadService_Upload_HTTPFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	adapterErr := fmt.Errorf("%w: metadata rejected", adapter.ErrBadRequest)
	mockAdapter.EXPECT().
		UploadDocument(ctx, "tok-abc", gomock.Any()).
		Return(models.UploadResponse{}, adapterErr)

	_, err := svc.Upload(ctx, "tok-abc", models.UploadJob{DocumentPath: "report.pdf"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpload)
	assert.Contains(t, err.Error(), "metadata rejected")
}
