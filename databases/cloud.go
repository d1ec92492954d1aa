package databases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/models"
)

// CloudStore is the remote document-store backend: three collections keyed
// by entity id, documents holding the records as plain fields with enum
// values in display-string form. Transport and decode failures surface as
// ErrUnavailable so the repository can degrade reads without guessing.
type CloudStore struct {
	db DatabaseHelper
}

// NewCloudStore wraps a connected database handle.
func NewCloudStore(db DatabaseHelper) *CloudStore {
	return &CloudStore{db: db}
}

// Name identifies the backend in logs.
func (s *CloudStore) Name() string { return "cloud" }

// ReadAllCases returns every case summary document.
func (s *CloudStore) ReadAllCases(ctx context.Context) ([]models.Case, error) {
	cursor, err := s.db.Collection(CasesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: finding cases: %v", ErrUnavailable, err)
	}
	var cases []models.Case
	if err := cursor.Decode(&cases); err != nil {
		return nil, fmt.Errorf("%w: decoding cases: %v", ErrUnavailable, err)
	}
	return cases, nil
}

// ReadAllGroups returns every case group document.
func (s *CloudStore) ReadAllGroups(ctx context.Context) ([]models.CaseGroup, error) {
	cursor, err := s.db.Collection(GroupsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: finding groups: %v", ErrUnavailable, err)
	}
	var groups []models.CaseGroup
	if err := cursor.Decode(&groups); err != nil {
		return nil, fmt.Errorf("%w: decoding groups: %v", ErrUnavailable, err)
	}
	return groups, nil
}

// ReadCaseDetail returns one case detail by id, ErrNotFound on a miss.
func (s *CloudStore) ReadCaseDetail(ctx context.Context, id string) (*models.CaseDetail, error) {
	var detail models.CaseDetail
	err := s.db.Collection(CaseDetailsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&detail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding case detail %s: %v", ErrUnavailable, id, err)
	}
	return &detail, nil
}

// UpsertCase writes a case summary, overwriting unconditionally.
func (s *CloudStore) UpsertCase(ctx context.Context, c models.Case) error {
	return s.upsert(ctx, CasesCollection, c.ID, c)
}

// UpsertCaseDetail writes a case detail, overwriting unconditionally.
func (s *CloudStore) UpsertCaseDetail(ctx context.Context, d models.CaseDetail) error {
	return s.upsert(ctx, CaseDetailsCollection, d.ID, d)
}

// UpsertGroup writes a case group; only the migration path writes groups.
func (s *CloudStore) UpsertGroup(ctx context.Context, g models.CaseGroup) error {
	return s.upsert(ctx, GroupsCollection, g.ID, g)
}

func (s *CloudStore) upsert(ctx context.Context, collection, id string, record interface{}) error {
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id},
		record, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: upserting %s/%s: %v", ErrUnavailable, collection, id, err)
	}
	return nil
}

// DeleteCase removes a case summary; deleting a missing id is not an error.
func (s *CloudStore) DeleteCase(ctx context.Context, id string) error {
	return s.delete(ctx, CasesCollection, id)
}

// DeleteCaseDetail removes a case detail; deleting a missing id is not an error.
func (s *CloudStore) DeleteCaseDetail(ctx context.Context, id string) error {
	return s.delete(ctx, CaseDetailsCollection, id)
}

func (s *CloudStore) delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", ErrUnavailable, collection, id, err)
	}
	return nil
}

// Migrate bulk-upserts a full case/group/detail set into the remote store,
// intended for one-time seeding from local data. Records are written one at
// a time; a failure partway leaves the already-written records in place.
func (s *CloudStore) Migrate(ctx context.Context, cases []models.Case, groups []models.CaseGroup, details map[string]models.CaseDetail) error {
	for _, c := range cases {
		if err := s.UpsertCase(ctx, c); err != nil {
			return fmt.Errorf("migrating case %s: %w", c.ID, err)
		}
	}
	for _, g := range groups {
		if err := s.UpsertGroup(ctx, g); err != nil {
			return fmt.Errorf("migrating group %s: %w", g.ID, err)
		}
	}
	for id, d := range details {
		if err := s.UpsertCaseDetail(ctx, d); err != nil {
			return fmt.Errorf("migrating case detail %s: %w", id, err)
		}
	}
	zap.S().Infow("migration to cloud store finished",
		"cases", len(cases),
		"groups", len(groups),
		"details", len(details),
	)
	return nil
}
