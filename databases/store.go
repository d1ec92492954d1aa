package databases

import (
	"context"
	"errors"

	"github.com/legaldesk/legal-case-api/models"
)

// Collection names shared by both backends. The cloud store uses them as
// mongo collection names; the local store derives its file names from them.
const (
	CasesCollection       = "cases"
	GroupsCollection      = "groups"
	CaseDetailsCollection = "case_details"
	UsersCollection       = "users"
)

var (
	// ErrNotFound reports a read miss: the entity does not exist in the backend.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable reports that the backend could not serve the call at all.
	// Only the cloud store produces it; local storage is assumed always
	// present, so a local failure is a genuine error and is returned as-is.
	ErrUnavailable = errors.New("backend unavailable")
)

// Store is the capability contract both persistence backends implement. The
// repository holds exactly one Store, selected once at boot, and contains a
// single implementation of each operation on top of it.
//
// Reads are tri-state: (value, nil), (_, ErrNotFound) or (_, ErrUnavailable),
// so the caller owns the degradation policy. Writes are last-writer-wins
// full-record replaces with no version check; deleting a missing id is not
// an error.
type Store interface {
	Name() string

	ReadAllCases(ctx context.Context) ([]models.Case, error)
	ReadAllGroups(ctx context.Context) ([]models.CaseGroup, error)
	ReadCaseDetail(ctx context.Context, id string) (*models.CaseDetail, error)

	UpsertCase(ctx context.Context, c models.Case) error
	UpsertCaseDetail(ctx context.Context, d models.CaseDetail) error
	DeleteCase(ctx context.Context, id string) error
	DeleteCaseDetail(ctx context.Context, id string) error
}
