package repositories

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kampala_finance_backend/internal/database"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"
)

// PasswordHasher turns a plaintext secret into a stored hash.
type PasswordHasher func(plain string) (string, error)

// DocumentRepository reads and writes the document held in a slot.
type DocumentRepository interface {
	// Load returns the stored document and a fingerprint of the bytes it was
	// decoded from. ErrDocumentAbsent when the slot is empty. A legacy document
	// is migrated and written back before it is returned.
	Load(ctx context.Context) (*models.Document, string, error)
	// Persist stamps LastUpdated and writes the document. A non-empty etag
	// must match the current slot content or ErrConflict is returned.
	Persist(ctx context.Context, doc *models.Document, etag string) error
	// Clear destroys the stored document.
	Clear(ctx context.Context) error
	// Decode parses and migrates document bytes without touching the slot.
	Decode(data []byte) (*models.Document, error)
	// Encode renders the document as indented JSON.
	Encode(doc *models.Document) ([]byte, error)
}

type documentRepository struct {
	slot database.Slot
	hash PasswordHasher
	now  func() time.Time
}

// NewDocumentRepository creates a DocumentRepository over slot. hash is used
// when migrating legacy documents that still carry plaintext passwords.
func NewDocumentRepository(slot database.Slot, hash PasswordHasher) DocumentRepository {
	return &documentRepository{slot: slot, hash: hash, now: time.Now}
}

func fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (r *documentRepository) Load(ctx context.Context) (*models.Document, string, error) {
	data, err := r.slot.Read(ctx)
	if errors.Is(err, database.ErrSlotEmpty) {
		return nil, "", ErrDocumentAbsent
	}
	if err != nil {
		return nil, "", err
	}
	doc, migrated, err := r.decode(data)
	if err != nil {
		return nil, "", err
	}
	etag := fingerprint(data)
	if !migrated {
		return doc, etag, nil
	}

	// Write the upgraded document back so the migration runs once.
	written, err := r.persist(ctx, doc, etag)
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			return nil, "", fmt.Errorf("saving migrated document: %w", err)
		}
		utils.LogWarn("Migrated document not saved, slot changed meanwhile", map[string]interface{}{"key": r.slot.Key()})
		return doc, etag, nil
	}
	return doc, fingerprint(written), nil
}

func (r *documentRepository) Persist(ctx context.Context, doc *models.Document, etag string) error {
	_, err := r.persist(ctx, doc, etag)
	return err
}

// persist does the work of Persist and returns the bytes written.
func (r *documentRepository) persist(ctx context.Context, doc *models.Document, etag string) ([]byte, error) {
	if etag != "" {
		current, err := r.slot.Read(ctx)
		switch {
		case errors.Is(err, database.ErrSlotEmpty):
			return nil, fmt.Errorf("%w: document was cleared", ErrConflict)
		case err != nil:
			return nil, err
		case fingerprint(current) != etag:
			return nil, ErrConflict
		}
	}

	doc.SchemaVersion = models.CurrentSchemaVersion
	doc.LastUpdated = r.now().UTC()
	data, err := r.Encode(doc)
	if err != nil {
		return nil, err
	}
	if err := r.slot.Write(ctx, data); err != nil {
		return nil, err
	}
	utils.LogDebug("Document persisted", map[string]interface{}{"key": r.slot.Key(), "bytes": len(data)})
	return data, nil
}

func (r *documentRepository) Clear(ctx context.Context) error {
	if err := r.slot.Clear(ctx); err != nil {
		return err
	}
	utils.LogInfo("Document cleared", map[string]interface{}{"key": r.slot.Key()})
	return nil
}

func (r *documentRepository) Encode(doc *models.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot encode document: %w", err)
	}
	return data, nil
}

func (r *documentRepository) Decode(data []byte) (*models.Document, error) {
	doc, _, err := r.decode(data)
	return doc, err
}

// decode parses data and reports whether a legacy layout was migrated.
func (r *documentRepository) decode(data []byte) (*models.Document, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, false, ErrDocumentAbsent
	}

	var header struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(trimmed, &header); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if header.SchemaVersion > models.CurrentSchemaVersion {
		return nil, false, fmt.Errorf("%w: %d (supported up to %d)", ErrUnsupportedSchema, header.SchemaVersion, models.CurrentSchemaVersion)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	migrated := header.SchemaVersion < 1
	if migrated {
		if err := r.migrateV0(trimmed, doc); err != nil {
			return nil, false, err
		}
	}
	normalize(doc)
	return doc, migrated, nil
}
