package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/repositories"
	"kampala_finance_backend/pkg/utils"
)

// BackupService moves whole documents in and out of the store.
type BackupService interface {
	ExportData(ctx context.Context) (string, error)
	ImportData(ctx context.Context, text string) error
	CreateBackup(ctx context.Context) (*models.Backup, error)
	RestoreBackup(ctx context.Context, input any) error
}

// BackupFilename names the backup file taken on day t.
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("kampala-backup-%s.json", t.Format(models.DateLayout))
}

// requiredBackupFields must be present and non-null in a restorable backup.
var requiredBackupFields = []string{"users", "transactions", "settings"}

// ExportData renders the stored document as indented JSON.
func (s *dataStore) ExportData(ctx context.Context) (string, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	data, err := s.repo.Encode(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportData replaces the document with text. Nothing is written unless text
// decodes as a document.
func (s *dataStore) ImportData(ctx context.Context, text string) error {
	doc, err := s.decodeInput([]byte(text))
	if err != nil {
		return err
	}
	if err := s.replace(ctx, doc); err != nil {
		return err
	}
	utils.LogInfo("Document imported", map[string]interface{}{"transactions": len(doc.Transactions)})
	return nil
}

func (s *dataStore) CreateBackup(ctx context.Context) (*models.Backup, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	backup := &models.Backup{
		Document:   *doc,
		BackedUpAt: s.now().UTC(),
		Version:    models.BackupFormatVersion,
	}
	utils.LogInfo("Backup created", map[string]interface{}{"by": actorName(ctx)})
	return backup, nil
}

// RestoreBackup replaces the document with a backup given as text (string,
// []byte, io.Reader) or as any value that marshals to one. The stored document
// is left untouched on every failure.
func (s *dataStore) RestoreBackup(ctx context.Context, input any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedInput, r)
		}
	}()

	raw, err := backupBytes(input)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	for _, name := range requiredBackupFields {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("%w: %s is missing", ErrInvalidBackup, name)
		}
	}

	doc, err := s.decodeInput(raw)
	if err != nil {
		return err
	}
	if err := s.replace(ctx, doc); err != nil {
		return err
	}
	utils.LogInfo("Backup restored", map[string]interface{}{"by": actorName(ctx), "transactions": len(doc.Transactions)})
	return nil
}

func backupBytes(input any) ([]byte, error) {
	switch v := input.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no backup given", ErrInvalidBackup)
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return data, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return data, nil
	}
}

// decodeInput decodes caller supplied text, reporting any failure as ErrMalformedInput.
func (s *dataStore) decodeInput(data []byte) (*models.Document, error) {
	doc, err := s.repo.Decode(data)
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, repositories.ErrUnsupportedSchema):
		return nil, err
	case errors.Is(err, repositories.ErrDocumentAbsent):
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	default:
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
}
