package ledger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
)

// Store is the external owner of the ledger. Implementations load and save
// the whole document; there is no partial or append I/O.
type Store interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
}

// GCSStore keeps the ledger workbook as a single object in a Google Cloud
// Storage bucket. Saves carry a generation-match precondition from the last
// load, so a racing writer gets a precondition failure instead of silently
// clobbering the other writer's rows. The failure surfaces as a normal save
// error; the caller logs it and asks the user to retry.
type GCSStore struct {
	bucket string
	object string

	mu         sync.Mutex
	generation int64 // object generation observed by the last load; 0 = unknown
}

// NewGCSStore parses a "gs://bucket/path/to/ledger.xlsx" URI.
func NewGCSStore(uri string) (*GCSStore, error) {
	if !strings.HasPrefix(uri, "gs://") {
		return nil, fmt.Errorf("invalid ledger object URI: %s", uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid ledger object URI (no object path): %s", uri)
	}
	return &GCSStore{bucket: parts[0], object: parts[1]}, nil
}

// LoadSnapshot downloads and decodes the whole workbook.
func (s *GCSStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: create storage client: %w", err)
	}
	defer client.Close()

	rc, err := client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: reading object %s/%s: %w", s.bucket, s.object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: reading bytes: %w", err)
	}

	s.mu.Lock()
	s.generation = rc.Attrs.Generation
	s.mu.Unlock()

	snap, err := DecodeWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: %w", err)
	}
	return snap, nil
}

// SaveSnapshot encodes and uploads the whole workbook, overwriting the
// object. When a generation was observed by a previous load, the write is
// conditional on it still being current.
func (s *GCSStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	data, err := EncodeWorkbook(snap)
	if err != nil {
		return fmt.Errorf("SaveSnapshot: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("SaveSnapshot: create storage client: %w", err)
	}
	defer client.Close()

	obj := client.Bucket(s.bucket).Object(s.object)

	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()
	if generation != 0 {
		obj = obj.If(storage.Conditions{GenerationMatch: generation})
	}

	w := obj.NewWriter(ctx)
	w.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("SaveSnapshot: writing object %s/%s: %w", s.bucket, s.object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SaveSnapshot: finalize upload: %w", err)
	}

	s.mu.Lock()
	s.generation = w.Attrs().Generation
	s.mu.Unlock()

	return nil
}

var _ Store = (*GCSStore)(nil)
