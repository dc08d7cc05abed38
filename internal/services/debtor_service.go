package services

import (
	"context"
	"fmt"
	"strings"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// DebtorService keeps debtor balances and statuses consistent.
type DebtorService interface {
	ListDebtors(ctx context.Context) ([]models.Debtor, error)
	AddDebtor(ctx context.Context, input models.NewDebtor) (*models.Debtor, error)
	UpdateDebtor(ctx context.Context, id string, update models.DebtorUpdate) (*models.Debtor, error)
	RecordDebtorPayment(ctx context.Context, id string, amount decimal.Decimal) (*models.Debtor, error)
}

func (s *dataStore) ListDebtors(ctx context.Context) ([]models.Debtor, error) {
	doc, err := s.view(ctx)
	if err != nil || doc == nil {
		return []models.Debtor{}, err
	}
	return doc.Debtors, nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", ErrValidation, field)
	}
	return nil
}

func (s *dataStore) AddDebtor(ctx context.Context, input models.NewDebtor) (*models.Debtor, error) {
	if utils.IsEmpty(input.Name) {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if err := nonNegative("totalDebt", input.TotalDebt); err != nil {
		return nil, err
	}
	if err := nonNegative("amountPaid", input.AmountPaid); err != nil {
		return nil, err
	}
	if input.DueDate != "" && !validDate(input.DueDate) {
		return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrValidation)
	}

	var created models.Debtor
	err := s.mutate(ctx, func(doc *models.Document) error {
		ids := make([]string, len(doc.Debtors))
		for i, d := range doc.Debtors {
			ids[i] = d.ID
		}
		created = models.Debtor{
			ID:         fmt.Sprintf("DBT-%03d", nextSequence(ids, "DBT-", 1)),
			Name:       strings.TrimSpace(input.Name),
			Contact:    input.Contact,
			Email:      input.Email,
			TotalDebt:  input.TotalDebt,
			AmountPaid: input.AmountPaid,
			DueDate:    input.DueDate,
			Notes:      input.Notes,
		}
		created.Derive()
		doc.Debtors = append(doc.Debtors, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func findDebtor(doc *models.Document, id string) (*models.Debtor, error) {
	for i := range doc.Debtors {
		if doc.Debtors[i].ID == id {
			return &doc.Debtors[i], nil
		}
	}
	return nil, fmt.Errorf("%w: debtor %s", ErrNotFound, id)
}

// UpdateDebtor merges the set fields of update into the debtor. Balance and
// status are re-derived after the merge whenever amountPaid or totalDebt changed.
func (s *dataStore) UpdateDebtor(ctx context.Context, id string, update models.DebtorUpdate) (*models.Debtor, error) {
	if update.TotalDebt != nil {
		if err := nonNegative("totalDebt", *update.TotalDebt); err != nil {
			return nil, err
		}
	}
	if update.AmountPaid != nil {
		if err := nonNegative("amountPaid", *update.AmountPaid); err != nil {
			return nil, err
		}
	}
	if update.DueDate != nil && *update.DueDate != "" && !validDate(*update.DueDate) {
		return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrValidation)
	}

	var updated models.Debtor
	err := s.mutate(ctx, func(doc *models.Document) error {
		d, err := findDebtor(doc, id)
		if err != nil {
			return err
		}
		if update.Name != nil {
			d.Name = *update.Name
		}
		if update.Contact != nil {
			d.Contact = *update.Contact
		}
		if update.Email != nil {
			d.Email = *update.Email
		}
		if update.TotalDebt != nil {
			d.TotalDebt = *update.TotalDebt
		}
		if update.AmountPaid != nil {
			d.AmountPaid = *update.AmountPaid
		}
		if update.DueDate != nil {
			d.DueDate = *update.DueDate
		}
		if update.Notes != nil {
			d.Notes = *update.Notes
		}
		if update.AmountPaid != nil || update.TotalDebt != nil {
			d.Derive()
		}
		updated = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RecordDebtorPayment adds amount to what the debtor has paid.
func (s *dataStore) RecordDebtorPayment(ctx context.Context, id string, amount decimal.Decimal) (*models.Debtor, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	var updated models.Debtor
	err := s.mutate(ctx, func(doc *models.Document) error {
		d, err := findDebtor(doc, id)
		if err != nil {
			return err
		}
		d.AmountPaid = d.AmountPaid.Add(amount)
		d.Derive()
		updated = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
