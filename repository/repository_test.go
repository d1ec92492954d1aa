package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/databases/mocks"
	"github.com/legaldesk/legal-case-api/models"
	"github.com/legaldesk/legal-case-api/repository"
)

func newLocalRepo(t *testing.T) *repository.CaseRepository {
	t.Helper()
	store, err := databases.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return repository.New(store, false)
}

func unavailable(msg string) error {
	return fmt.Errorf("%w: %s", databases.ErrUnavailable, msg)
}

func TestUpdateCaseDetailKeepsSummaryInSync(t *testing.T) {
	r := newLocalRepo(t)
	ctx := context.Background()

	detail, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	require.NotNil(t, detail)

	detail.Title = "Tranh chấp đất đai (đã cập nhật)"
	detail.Status = models.StatusCompleted
	detail.Judge = "Nguyễn Văn Thẩm"

	saved, err := r.UpdateCaseDetail(ctx, *detail)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, saved.Status)

	cases, err := r.GetAllCases(ctx)
	require.NoError(t, err)
	found := false
	for _, c := range cases {
		if c.ID == "CASE_CIVIL_DALAT_146" {
			found = true
			assert.Equal(t, "Tranh chấp đất đai (đã cập nhật)", c.Title)
			assert.Equal(t, models.StatusCompleted, c.Status)
		}
	}
	assert.True(t, found)

	reread, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn Thẩm", reread.Judge)
}

func TestCreateCaseSynthesizesEmptyDetail(t *testing.T) {
	r := newLocalRepo(t)
	ctx := context.Background()

	c := models.Case{
		ID:     "CASE_NEW_01",
		Title:  "Vụ án mới",
		Status: models.StatusUpcoming,
		Type:   models.TypeLabor,
	}
	require.NoError(t, r.CreateCase(ctx, c))

	detail, err := r.GetCaseDetailByID(ctx, "CASE_NEW_01")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Vụ án mới", detail.Title)
	assert.Equal(t, "Chưa cập nhật", detail.Judge)
	assert.Empty(t, detail.Timeline)
}

func TestCreateCaseIDCollisionKeepsExistingDetail(t *testing.T) {
	r := newLocalRepo(t)
	ctx := context.Background()

	detail, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	timelineLen := len(detail.Timeline)
	require.NotZero(t, timelineLen)

	// re-creating with an existing id must not wipe the detail or
	// duplicate the summary
	err = r.CreateCase(ctx, detail.Summary())
	require.NoError(t, err)

	cases, err := r.GetAllCases(ctx)
	require.NoError(t, err)
	seen := 0
	for _, c := range cases {
		if c.ID == "CASE_CIVIL_DALAT_146" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)

	kept, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	assert.Len(t, kept.Timeline, timelineLen)
}

func TestCreateCaseIDCollisionLeavesBothProjectionsUntouched(t *testing.T) {
	r := newLocalRepo(t)
	ctx := context.Background()

	before, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	require.NotNil(t, before)

	// re-create under a taken id with completely different fields; neither
	// projection may change
	clash := models.Case{
		ID:     "CASE_CIVIL_DALAT_146",
		Title:  "Tiêu đề khác hẳn",
		Status: models.StatusCompleted,
		Type:   models.TypeCriminal,
	}
	require.NoError(t, r.CreateCase(ctx, clash))

	cases, err := r.GetAllCases(ctx)
	require.NoError(t, err)
	seen := 0
	for _, c := range cases {
		if c.ID == "CASE_CIVIL_DALAT_146" {
			seen++
			assert.Equal(t, before.Title, c.Title)
			assert.Equal(t, before.Status, c.Status)
			assert.Equal(t, before.Type, c.Type)
		}
	}
	assert.Equal(t, 1, seen)

	after, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Status, after.Status)
	assert.Len(t, after.Timeline, len(before.Timeline))
}

func TestDeleteCaseRemovesBothProjections(t *testing.T) {
	r := newLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DeleteCase(ctx, "CASE_CIVIL_DALAT_146"))

	cases, err := r.GetAllCases(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	detail, err := r.GetCaseDetailByID(ctx, "CASE_CIVIL_DALAT_146")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetAllCasesDegradesToEmptyOnOutage(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ReadAllCases", mock.Anything).Return(nil, unavailable("no reachable servers"))

	r := repository.New(store, true)
	cases, err := r.GetAllCases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestGetAllCasesEmptyCloudStaysEmpty(t *testing.T) {
	// an empty remote collection is an answer, not a reason to fall back
	store := mocks.NewStore(t)
	store.On("ReadAllCases", mock.Anything).Return([]models.Case{}, nil)

	r := repository.New(store, true)
	cases, err := r.GetAllCases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cases)
	store.AssertNumberOfCalls(t, "ReadAllCases", 1)
}

func TestGetCaseDetailByIDOutageReadsAsAbsent(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, unavailable("timeout"))

	r := repository.New(store, true)
	detail, err := r.GetCaseDetailByID(context.Background(), "CASE_1")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestUpdateCaseDetailRestoresPreviousOnSummaryFailure(t *testing.T) {
	prev := models.CaseDetail{Case: models.Case{ID: "CASE_1", Title: "cũ"}}
	next := models.CaseDetail{Case: models.Case{ID: "CASE_1", Title: "mới"}}

	store := mocks.NewStore(t)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(&prev, nil)
	store.On("UpsertCaseDetail", mock.Anything, next).Return(nil)
	store.On("UpsertCase", mock.Anything, next.Summary()).Return(unavailable("write failed"))
	store.On("UpsertCaseDetail", mock.Anything, prev).Return(nil)

	r := repository.New(store, true)
	_, err := r.UpdateCaseDetail(context.Background(), next)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrPartiallyApplied)
}

func TestUpdateCaseDetailPartiallyAppliedWithoutSnapshot(t *testing.T) {
	next := models.CaseDetail{Case: models.Case{ID: "CASE_1", Title: "mới"}}

	store := mocks.NewStore(t)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, databases.ErrNotFound)
	store.On("UpsertCaseDetail", mock.Anything, next).Return(nil)
	store.On("UpsertCase", mock.Anything, next.Summary()).Return(unavailable("write failed"))

	r := repository.New(store, true)
	_, err := r.UpdateCaseDetail(context.Background(), next)
	assert.ErrorIs(t, err, repository.ErrPartiallyApplied)
}

func TestUpdateCaseDetailNoSnapshotOnUnreadableBackend(t *testing.T) {
	next := models.CaseDetail{Case: models.Case{ID: "CASE_1", Title: "mới"}}

	store := mocks.NewStore(t)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, unavailable("read failed"))
	store.On("UpsertCaseDetail", mock.Anything, next).Return(nil)
	store.On("UpsertCase", mock.Anything, next.Summary()).Return(unavailable("write failed"))

	r := repository.New(store, true)
	_, err := r.UpdateCaseDetail(context.Background(), next)
	assert.ErrorIs(t, err, repository.ErrPartiallyApplied)
	// no snapshot means no restore attempt
	store.AssertNumberOfCalls(t, "UpsertCaseDetail", 1)
}

func TestCreateCaseRollsBackSummaryOnDetailFailure(t *testing.T) {
	c := models.Case{ID: "CASE_1", Title: "Vụ án mới"}

	store := mocks.NewStore(t)
	store.On("UpsertCase", mock.Anything, c).Return(nil)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, databases.ErrNotFound)
	store.On("UpsertCaseDetail", mock.Anything, mock.Anything).Return(unavailable("write failed"))
	store.On("DeleteCase", mock.Anything, "CASE_1").Return(nil)

	r := repository.New(store, true)
	err := r.CreateCase(context.Background(), c)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrPartiallyApplied)
	store.AssertCalled(t, "DeleteCase", mock.Anything, "CASE_1")
}

func TestCreateCasePartiallyAppliedWhenRollbackFails(t *testing.T) {
	c := models.Case{ID: "CASE_1", Title: "Vụ án mới"}

	store := mocks.NewStore(t)
	store.On("UpsertCase", mock.Anything, c).Return(nil)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, databases.ErrNotFound)
	store.On("UpsertCaseDetail", mock.Anything, mock.Anything).Return(unavailable("write failed"))
	store.On("DeleteCase", mock.Anything, "CASE_1").Return(unavailable("delete failed"))

	r := repository.New(store, true)
	err := r.CreateCase(context.Background(), c)
	assert.ErrorIs(t, err, repository.ErrPartiallyApplied)
}

func TestDeleteCasePartiallyAppliedOnDetailFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("DeleteCase", mock.Anything, "CASE_1").Return(nil)
	store.On("DeleteCaseDetail", mock.Anything, "CASE_1").Return(unavailable("delete failed"))

	r := repository.New(store, true)
	err := r.DeleteCase(context.Background(), "CASE_1")
	assert.ErrorIs(t, err, repository.ErrPartiallyApplied)
}

func TestUpdateWriteFailurePropagates(t *testing.T) {
	next := models.CaseDetail{Case: models.Case{ID: "CASE_1"}}

	store := mocks.NewStore(t)
	store.On("ReadCaseDetail", mock.Anything, "CASE_1").Return(nil, databases.ErrNotFound)
	store.On("UpsertCaseDetail", mock.Anything, next).Return(unavailable("write failed"))

	r := repository.New(store, true)
	_, err := r.UpdateCaseDetail(context.Background(), next)
	assert.Error(t, err)
}

func TestSimulateLatencyHonorsCancellation(t *testing.T) {
	store := mocks.NewStore(t)

	r := repository.New(store, false)
	r.LocalLatency = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.GetAllCases(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
