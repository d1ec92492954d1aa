// Package repository presents one interface for case data to the rest of
// the application, hiding which backend was selected at boot and enforcing
// the summary/detail duality: whenever a CaseDetail is written, the derived
// Case summary is written in the same logical operation.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/models"
)

// ErrPartiallyApplied reports a multi-record write whose later step failed
// after an earlier step succeeded and could not be compensated, leaving the
// summary and detail projections inconsistent. Callers should surface it
// distinctly from a total failure.
var ErrPartiallyApplied = errors.New("write partially applied")

// CaseRepository dispatches every case operation to the backend selected at
// boot. There is exactly one implementation of each operation; the Store
// carries the backend difference.
//
// Degradation policy: cloud read failures (ErrUnavailable) are logged and
// served as empty/absent so the dashboard keeps rendering, and once the
// cloud backend is selected local data is never consulted, even when the
// cloud is empty. Write failures always propagate so the caller is never
// misled into believing an edit took. Local failures propagate on both
// paths; local storage is assumed always available, so a failure there is a
// genuine bug worth surfacing.
type CaseRepository struct {
	Store        databases.Store
	CloudEnabled bool

	// LocalLatency mirrors the loading signature of a remote call when
	// serving from local storage, so the UI behaves the same against both
	// backends. Zero disables the delay.
	LocalLatency time.Duration
}

// New builds a repository over the selected store.
func New(store databases.Store, cloudEnabled bool) *CaseRepository {
	return &CaseRepository{Store: store, CloudEnabled: cloudEnabled}
}

// GetAllCases returns every case summary. On a cloud outage it returns an
// empty list, never local data.
func (r *CaseRepository) GetAllCases(ctx context.Context) ([]models.Case, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}
	cases, err := r.Store.ReadAllCases(ctx)
	if err != nil {
		if errors.Is(err, databases.ErrUnavailable) {
			zap.S().Errorw("cloud read failed, serving empty case list", "error", err)
			return []models.Case{}, nil
		}
		return nil, err
	}
	if cases == nil {
		cases = []models.Case{}
	}
	return cases, nil
}

// GetCaseGroups returns every case group, with the same degradation policy
// as GetAllCases.
func (r *CaseRepository) GetCaseGroups(ctx context.Context) ([]models.CaseGroup, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}
	groups, err := r.Store.ReadAllGroups(ctx)
	if err != nil {
		if errors.Is(err, databases.ErrUnavailable) {
			zap.S().Errorw("cloud read failed, serving empty group list", "error", err)
			return []models.CaseGroup{}, nil
		}
		return nil, err
	}
	if groups == nil {
		groups = []models.CaseGroup{}
	}
	return groups, nil
}

// GetCaseDetailByID returns the authoritative record for one case, or nil
// when the case does not exist. A cloud outage also reads as nil; the two
// are logged distinctly.
func (r *CaseRepository) GetCaseDetailByID(ctx context.Context, id string) (*models.CaseDetail, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}
	detail, err := r.Store.ReadCaseDetail(ctx, id)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, databases.ErrUnavailable) {
			zap.S().Errorw("cloud read failed, treating case detail as absent", "id", id, "error", err)
			return nil, nil
		}
		return nil, err
	}
	return detail, nil
}

// UpdateCaseDetail replaces the full detail record wholesale and rewrites
// the derived summary in the same logical operation. If the summary write
// fails, the previous detail is restored; if that compensation also fails,
// the error wraps ErrPartiallyApplied. The input detail is returned
// unchanged; it is not re-read from the backend after the write.
func (r *CaseRepository) UpdateCaseDetail(ctx context.Context, detail models.CaseDetail) (models.CaseDetail, error) {
	// Best-effort snapshot for the compensating rollback. A miss or an
	// unreadable backend both mean there is nothing to restore.
	var prev *models.CaseDetail
	if snap, err := r.Store.ReadCaseDetail(ctx, detail.ID); err == nil {
		prev = snap
	}

	if err := r.Store.UpsertCaseDetail(ctx, detail); err != nil {
		return detail, fmt.Errorf("saving case detail %s: %w", detail.ID, err)
	}
	if err := r.Store.UpsertCase(ctx, detail.Summary()); err != nil {
		if prev != nil {
			if rbErr := r.Store.UpsertCaseDetail(ctx, *prev); rbErr != nil {
				return detail, fmt.Errorf("%w: summary write for %s failed (%v) and detail rollback failed (%v)",
					ErrPartiallyApplied, detail.ID, err, rbErr)
			}
			return detail, fmt.Errorf("refreshing summary for %s (previous detail restored): %w", detail.ID, err)
		}
		return detail, fmt.Errorf("%w: detail %s saved but summary write failed: %v", ErrPartiallyApplied, detail.ID, err)
	}
	return detail, nil
}

// CreateCase persists a new summary and synthesizes a matching empty detail
// in the same logical operation. The guard runs before any write: when a
// detail already exists under the id, the create is a no-op for both
// projections, so a collision can never overwrite one side and leave the
// other stale.
func (r *CaseRepository) CreateCase(ctx context.Context, c models.Case) error {
	_, err := r.Store.ReadCaseDetail(ctx, c.ID)
	switch {
	case err == nil:
		zap.S().Warnw("case already exists, keeping both projections", "id", c.ID)
		return nil
	case errors.Is(err, databases.ErrNotFound):
	default:
		return fmt.Errorf("checking existing detail for %s: %w", c.ID, err)
	}

	if err := r.Store.UpsertCase(ctx, c); err != nil {
		return fmt.Errorf("creating case %s: %w", c.ID, err)
	}
	if err := r.Store.UpsertCaseDetail(ctx, models.NewEmptyDetail(c)); err != nil {
		// compensate: remove the just-written summary so a half-created
		// case does not linger in list views
		if rbErr := r.Store.DeleteCase(ctx, c.ID); rbErr != nil {
			return fmt.Errorf("%w: summary for %s created but detail write failed (%v) and rollback failed (%v)",
				ErrPartiallyApplied, c.ID, err, rbErr)
		}
		return fmt.Errorf("creating case detail %s (summary rolled back): %w", c.ID, err)
	}
	return nil
}

// DeleteCase removes both projections. Deletion only counts as successful
// when both are gone; a detail left behind surfaces as ErrPartiallyApplied.
func (r *CaseRepository) DeleteCase(ctx context.Context, id string) error {
	if err := r.Store.DeleteCase(ctx, id); err != nil {
		return fmt.Errorf("deleting case %s: %w", id, err)
	}
	if err := r.Store.DeleteCaseDetail(ctx, id); err != nil {
		return fmt.Errorf("%w: summary for %s removed but detail delete failed: %v", ErrPartiallyApplied, id, err)
	}
	return nil
}

// simulateLatency delays local reads so both backends share one loading
// signature. The delay is cosmetic, not a real I/O wait, and honors
// cancellation.
func (r *CaseRepository) simulateLatency(ctx context.Context) error {
	if r.CloudEnabled || r.LocalLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(r.LocalLatency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
