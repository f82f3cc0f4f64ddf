package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/freshstack-dev/go-backend/internal/domain"
	"github.com/freshstack-dev/go-backend/internal/report"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeArchive записывает переданный объект либо возвращает заданную ошибку.
type fakeArchive struct {
	err     error
	key     string
	content []byte
}

func (f *fakeArchive) Store(_ context.Context, objectKey string, content []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = objectKey
	f.content = content
	return objectKey, nil
}

func TestReportUC_GenerateExport(t *testing.T) {
	repo := newFakeItemRepo(testItem(1), testItem(2))
	archive := &fakeArchive{}
	uc := NewReportUC(repo, archive, nopLogger{})

	file, err := uc.GenerateExport(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Name, "grocery-report-"))
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
	assert.NotEmpty(t, file.Content)
	assert.False(t, file.GeneratedAt.IsZero())

	// содержимое — валидная xlsx-книга
	book, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer book.Close()
	assert.Len(t, book.GetSheetList(), 5)
}

func TestReportUC_GenerateExport_ArchivesCopy(t *testing.T) {
	archive := &fakeArchive{}
	uc := NewReportUC(newFakeItemRepo(testItem(1)), archive, nopLogger{})

	file, err := uc.GenerateExport(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(archive.key, "reports/"))
	assert.True(t, strings.HasSuffix(archive.key, ".xlsx"))
	assert.Equal(t, file.Content, archive.content)
}

func TestReportUC_GenerateExport_ArchiveFailureIsNotFatal(t *testing.T) {
	archive := &fakeArchive{err: errors.New("bucket unreachable")}
	uc := NewReportUC(newFakeItemRepo(testItem(1)), archive, nopLogger{})

	file, err := uc.GenerateExport(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, file.Content)
}

func TestReportUC_GenerateExport_EncodeFailure(t *testing.T) {
	encodeErr := errors.New("workbook write failed")
	encodeWorkbook = func(*report.Report) ([]byte, error) { return nil, encodeErr }
	defer func() { encodeWorkbook = report.EncodeXLSX }()

	uc := NewReportUC(newFakeItemRepo(testItem(1)), &fakeArchive{}, nopLogger{})

	_, err := uc.GenerateExport(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrReportGeneration)
	assert.ErrorIs(t, err, encodeErr)
}

func TestReportUC_GenerateExport_RepoFailure(t *testing.T) {
	repo := newFakeItemRepo()
	repo.getAll = func(context.Context) ([]*domain.Item, error) {
		return nil, errors.New("connection refused")
	}
	uc := NewReportUC(repo, &fakeArchive{}, nopLogger{})

	_, err := uc.GenerateExport(context.Background())
	assert.Error(t, err)
}
