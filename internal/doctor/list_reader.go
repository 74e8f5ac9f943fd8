package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/leeovery/todol/internal/storage"
)

// ListData is the raw content of a list file as seen by checks.
type ListData struct {
	// Raw is the file content, nil when ReadErr is set.
	Raw []byte
	// ReadErr is set when the file could not be read.
	ReadErr error
	// Records holds the split records, nil when the size is wrong.
	Records []storage.Record
}

// ReadListData reads the file at path once. It never fails: read and size
// problems are recorded on the returned value for checks to report.
func ReadListData(path string) ListData {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ListData{ReadErr: fmt.Errorf("read %s: %w", path, err)}
	}
	data := ListData{Raw: raw}
	if records, err := storage.ReadRecords(raw); err == nil {
		data.Records = records
	}
	return data
}

// listDataKeyType is an unexported type for the context key used to pass
// pre-read list data to checks.
type listDataKeyType struct{}

// ListDataKey is the context key used to pass pre-read ListData to checks.
var ListDataKey = listDataKeyType{}

// WithListData reads path and stores the result on ctx.
func WithListData(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ListDataKey, ReadListData(path))
}

// getListData returns list data from the context, falling back to reading path.
func getListData(ctx context.Context, path string) ListData {
	if data, ok := ctx.Value(ListDataKey).(ListData); ok {
		return data
	}
	return ReadListData(path)
}
