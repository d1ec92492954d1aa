package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/legaldesk/legal-case-api/databases"
	"github.com/legaldesk/legal-case-api/databases/mocks"
	"github.com/legaldesk/legal-case-api/models"
)

func TestCloudStoreReadCaseDetailNotFound(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	sr := &mocks.SingleResultHelper{}

	sr.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, bson.M{"_id": "CASE_NOPE"}).Return(sr)
	db.On("Collection", "case_details").Return(conn)

	s := databases.NewCloudStore(db)
	_, err := s.ReadCaseDetail(context.Background(), "CASE_NOPE")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestCloudStoreReadCaseDetailDecodeError(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	sr := &mocks.SingleResultHelper{}

	sr.On("Decode", mock.Anything).Return(errors.New("connection reset"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)
	db.On("Collection", "case_details").Return(conn)

	s := databases.NewCloudStore(db)
	_, err := s.ReadCaseDetail(context.Background(), "CASE_X")
	assert.ErrorIs(t, err, databases.ErrUnavailable)
}

func TestCloudStoreReadAllCases(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		out := args.Get(0).(*[]models.Case)
		*out = []models.Case{{ID: "CASE_1", Title: "Vụ án thứ nhất"}}
	}).Return(nil)
	conn.On("Find", mock.Anything, bson.M{}).Return(cursor, nil)
	db.On("Collection", "cases").Return(conn)

	s := databases.NewCloudStore(db)
	cases, err := s.ReadAllCases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "CASE_1", cases[0].ID)
}

func TestCloudStoreReadAllCasesUnavailable(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("no reachable servers"))
	db.On("Collection", "cases").Return(conn)

	s := databases.NewCloudStore(db)
	_, err := s.ReadAllCases(context.Background())
	assert.ErrorIs(t, err, databases.ErrUnavailable)
}

func TestCloudStoreUpsertCase(t *testing.T) {
	db := mocks.NewDatabaseHelper(t)
	conn := mocks.NewCollectionHelper(t)

	conn.On("ReplaceOne", mock.Anything, bson.M{"_id": "CASE_1"}, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)
	db.On("Collection", "cases").Return(conn)

	s := databases.NewCloudStore(db)
	err := s.UpsertCase(context.Background(), models.Case{ID: "CASE_1", Title: "Vụ án thứ nhất"})
	assert.NoError(t, err)
}

func TestCloudStoreUpsertCaseUnavailable(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("write concern failed"))
	db.On("Collection", "cases").Return(conn)

	s := databases.NewCloudStore(db)
	err := s.UpsertCase(context.Background(), models.Case{ID: "CASE_1"})
	assert.ErrorIs(t, err, databases.ErrUnavailable)
}

func TestCloudStoreDeleteCase(t *testing.T) {
	db := mocks.NewDatabaseHelper(t)
	conn := mocks.NewCollectionHelper(t)

	conn.On("DeleteOne", mock.Anything, bson.M{"_id": "CASE_1"}).Return(int64(1), nil)
	db.On("Collection", "cases").Return(conn)

	s := databases.NewCloudStore(db)
	assert.NoError(t, s.DeleteCase(context.Background(), "CASE_1"))
}

func TestCloudStoreMigrateWritesEveryRecord(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{}, nil)
	db.On("Collection", mock.Anything).Return(conn)

	s := databases.NewCloudStore(db)
	err := s.Migrate(context.Background(),
		[]models.Case{{ID: "CASE_1"}, {ID: "CASE_2"}},
		[]models.CaseGroup{{ID: "g1"}},
		map[string]models.CaseDetail{"CASE_1": {Case: models.Case{ID: "CASE_1"}}},
	)
	require.NoError(t, err)
	conn.AssertNumberOfCalls(t, "ReplaceOne", 4)
}
