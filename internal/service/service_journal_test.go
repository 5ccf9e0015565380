package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/mock"
	"github.com/enterprise-sync/asingest/internal/utils"
	"github.com/enterprise-sync/asingest/models"
)

func newTestJournalSvc(t *testing.T, ctrl *gomock.Controller) (JournalService, *mock.MockJournalRepository) {
	t.Helper()

	mockRepo := mock.NewMockJournalRepository(ctrl)
	svc := NewJournalService(mockRepo, logger.Nop())

	return svc, mockRepo
}

func TestJournalService_Record_FillsRunIDAndChecksum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestJournalSvc(t, ctrl)

	document := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(document, []byte("hello"), 0o600))

	ctx := context.WithValue(context.Background(), utils.RunIDCtxKey, "run-42")

	mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, receipt models.UploadReceipt) (int64, error) {
			assert.Equal(t, "run-42", receipt.RunID)
			assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", receipt.DocumentSHA256)
			assert.False(t, receipt.CreatedAt.IsZero())
			return 1, nil
		},
	)

	err := svc.Record(ctx, models.UploadReceipt{
		Document: document,
		Status:   models.ReceiptStatusDone,
	})
	require.NoError(t, err)
}

func TestJournalService_Record_UnreadableDocumentSkipsChecksum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, receipt models.UploadReceipt) (int64, error) {
			assert.Empty(t, receipt.DocumentSHA256)
			return 1, nil
		},
	)

	err := svc.Record(ctx, models.UploadReceipt{
		Document:    filepath.Join(t.TempDir(), "missing.pdf"),
		Status:      models.ReceiptStatusFailed,
		FailureKind: "upload",
	})
	require.NoError(t, err)
}

func TestJournalService_Record_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(int64(0), assert.AnError)

	err := svc.Record(ctx, models.UploadReceipt{Status: models.ReceiptStatusDone})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record upload receipt")
}

func TestJournalService_NoRepository(t *testing.T) {
	svc := NewJournalService(nil, logger.Nop())
	ctx := context.Background()

	err := svc.Record(ctx, models.UploadReceipt{Status: models.ReceiptStatusDone})
	require.Error(t, err)
	assert.ErrorIs(t, err, errJournalUnavailable)

	_, err = svc.Recent(ctx, 5)
	assert.ErrorIs(t, err, errJournalUnavailable)
}

func TestJournalService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestJournalSvc(t, ctrl)
	ctx := context.Background()

	expected := []models.UploadReceipt{{ID: 2}, {ID: 1}}
	mockRepo.EXPECT().Recent(ctx, 10).Return(expected, nil)

	receipts, err := svc.Recent(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, expected, receipts)
}
