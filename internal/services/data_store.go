package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"kampala_finance_backend/internal/fixtures"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/repositories"
	"kampala_finance_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// DataStore owns the document and is the only sanctioned path to the slot.
// Read operations degrade to empty results while no document exists; write
// operations fail with ErrDocumentAbsent.
type DataStore interface {
	Initialize(ctx context.Context) error
	Load(ctx context.Context) (*models.Document, error)
	Clear(ctx context.Context) error

	TransactionService
	DebtorService
	InventoryService
	SettingsService
	BackupService
	ReportService
}

// StoreOptions configure a DataStore.
type StoreOptions struct {
	// BcryptCost is used for seeded and updated passwords. Zero means bcrypt.DefaultCost.
	BcryptCost int
	// SeedPasswords maps fixture usernames to their initial password.
	SeedPasswords map[string]string
	// DefaultPassword is given to fixture users without an entry in SeedPasswords.
	DefaultPassword string
	Rand            *rand.Rand
	Now             func() time.Time
}

type dataStore struct {
	mu   sync.Mutex
	repo repositories.DocumentRepository
	opts StoreOptions
	hash repositories.PasswordHasher
	now  func() time.Time
}

// NewDataStore creates the store over repo.
func NewDataStore(repo repositories.DocumentRepository, opts StoreOptions) DataStore {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &dataStore{
		repo: repo,
		opts: opts,
		hash: PasswordHasher(opts.BcryptCost),
		now:  now,
	}
}

func (s *dataStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, err := s.repo.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrDocumentAbsent) {
		// Never paper over unreadable content with fresh fixtures.
		return err
	}

	users, err := s.seedUsers()
	if err != nil {
		return err
	}
	doc := fixtures.Generate(fixtures.Options{Rand: s.opts.Rand, Now: s.now(), Users: users})
	if err := s.repo.Persist(ctx, doc, ""); err != nil {
		return fmt.Errorf("failed to persist initial document: %w", err)
	}
	utils.LogInfo("Document initialized with fixture data", map[string]interface{}{
		"transactions": len(doc.Transactions),
		"users":        len(doc.Users),
	})
	return nil
}

func (s *dataStore) seedUsers() (map[string]models.UserRecord, error) {
	users := fixtures.DefaultProfiles()
	for name, u := range users {
		password, ok := s.opts.SeedPasswords[name]
		if !ok || password == "" {
			if s.opts.DefaultPassword == "" {
				return nil, fmt.Errorf("%w: no password configured for user %q", ErrValidation, name)
			}
			password = s.opts.DefaultPassword
			utils.LogWarn("Seeding user with the default password", map[string]interface{}{"username": name})
		}
		hash, err := s.hash(password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		users[name] = u
	}
	return users, nil
}

func (s *dataStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, _, err := s.repo.Load(ctx)
	return doc, err
}

func (s *dataStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(ctx)
}

// view loads the document for reading. A nil document with a nil error means absent.
func (s *dataStore) view(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, _, err := s.repo.Load(ctx)
	if errors.Is(err, repositories.ErrDocumentAbsent) {
		return nil, nil
	}
	return doc, err
}

// mutate runs one read-modify-write cycle. Nothing is written when apply fails.
func (s *dataStore) mutate(ctx context.Context, apply func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, etag, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := apply(doc); err != nil {
		return err
	}
	return s.repo.Persist(ctx, doc, etag)
}

// replace overwrites the document without looking at what is stored.
func (s *dataStore) replace(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Persist(ctx, doc, "")
}

// nextSequence returns a number that is at least floor and greater than the
// numeric suffix of every id carrying prefix.
func nextSequence(ids []string, prefix string, floor int64) int64 {
	next := floor
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimPrefix(id, prefix), 10, 64)
		if err != nil {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
