package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, userID string, filter ListFilter) ([]*Entry, error)
	UpdateEntry(ctx context.Context, id int64, userID string, patch Patch) error
	SoftDeleteEntry(ctx context.Context, id int64, userID string) error
}

// ListFilter narrows a listing to a time range on the transaction timestamp.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

// Patch is a sparse update: nil fields are left unchanged. The store always
// stamps updated_at when a patch is applied.
type Patch struct {
	Name    *string
	Amount  *decimal.Decimal
	Account *string
	Type    *TxType
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Amount == nil && p.Account == nil && p.Type == nil
}

type CreateParams struct {
	UserID     string
	Name       string
	Amount     decimal.Decimal
	Account    string
	Type       TxType
	OccurredAt time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Entry, error) {
	e := &Entry{
		UserID:     params.UserID,
		Name:       params.Name,
		Amount:     params.Amount,
		Account:    params.Account,
		Type:       params.Type,
		OccurredAt: params.OccurredAt,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// List returns the user's live entries, newest transaction first.
func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, userID, filter)
}

// ListToday lists entries whose transaction timestamp falls within the calendar
// day of now, in now's location.
func (s *Service) ListToday(ctx context.Context, userID string, now time.Time) ([]*Entry, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Second)

	return s.repo.ListEntries(ctx, userID, ListFilter{From: &start, To: &end})
}

func (s *Service) Update(ctx context.Context, id int64, userID string, patch Patch) error {
	if patch.Empty() {
		return ErrEmptyPatch
	}

	return s.repo.UpdateEntry(ctx, id, userID, patch)
}

// SoftDelete marks the entry deleted. Deleting an already-deleted entry
// returns ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, id int64, userID string) error {
	return s.repo.SoftDeleteEntry(ctx, id, userID)
}
