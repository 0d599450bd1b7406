package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/storage"
)

// ArchiveService keeps a copy of every accepted upload so a batch can be
// traced back to the workbook that produced it.
type ArchiveService interface {
	// ArchiveWorkbook stores the raw workbook bytes under the batch ID
	// and returns the storage path.
	ArchiveWorkbook(ctx context.Context, batchID, filename string, file io.Reader) (string, error)
}

type archiveServiceImpl struct {
	storage storage.FileStorage
}

func NewArchiveService(storage storage.FileStorage) ArchiveService {
	return &archiveServiceImpl{storage: storage}
}

// ArchiveWorkbook implements ArchiveService.
func (s *archiveServiceImpl) ArchiveWorkbook(ctx context.Context, batchID, filename string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return "", fmt.Errorf("invalid file type: only xlsx and xls workbooks are archived")
	}

	month := time.Now().UTC().Format("2006-01")
	name := fmt.Sprintf("%s-%s", batchID, filepath.Base(filename))
	path := filepath.Join("imports", month, name)

	archivedPath, err := s.storage.Upload(ctx, file, path, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return "", fmt.Errorf("failed to archive workbook: %w", err)
	}

	return archivedPath, nil
}
