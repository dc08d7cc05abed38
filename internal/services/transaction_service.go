package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"kampala_finance_backend/internal/models"
)

// TransactionService lists and records money movements.
type TransactionService interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, input models.NewTransaction) (*models.Transaction, error)
}

// ListTransactions returns the matching transactions, newest date first.
// Transactions sharing a date keep their storage order, newest insert first.
func (s *dataStore) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	doc, err := s.view(ctx)
	if err != nil || doc == nil {
		return []models.Transaction{}, err
	}

	out := make([]models.Transaction, 0, len(doc.Transactions))
	for _, t := range doc.Transactions {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func validateNewTransaction(in *models.NewTransaction) error {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.PaymentMethod = strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if !contains(models.TransactionTypes, in.Type) {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, in.Type)
	}
	if !contains(models.PaymentMethods, in.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, in.PaymentMethod)
	}
	if in.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	return nil
}

// AddTransaction stamps id, date and time on the input and prepends it.
// recordedBy is the current principal when one is known.
func (s *dataStore) AddTransaction(ctx context.Context, input models.NewTransaction) (*models.Transaction, error) {
	if err := validateNewTransaction(&input); err != nil {
		return nil, err
	}
	recordedBy := input.RecordedBy
	if p := CurrentUser(ctx); p != nil {
		recordedBy = p.Username
	}

	var created models.Transaction
	err := s.mutate(ctx, func(doc *models.Document) error {
		now := s.now()
		ids := make([]string, len(doc.Transactions))
		for i, t := range doc.Transactions {
			ids[i] = t.ID
		}

		created = models.Transaction{
			ID:            fmt.Sprintf("TRX-%d", nextSequence(ids, "TRX-", now.UnixMilli())),
			Date:          now.Format(models.DateLayout),
			Time:          now.Format(models.TimeLayout),
			Type:          input.Type,
			Category:      input.Category,
			Description:   input.Description,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			Reference:     input.Reference,
			RecordedBy:    recordedBy,
		}
		doc.Transactions = append([]models.Transaction{created}, doc.Transactions...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
