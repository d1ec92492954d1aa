package databases

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/models"
)

// LocalStore is the fallback backend: four JSON files under a data
// directory, one per persisted collection, lazily seeded from the bundled
// fixture set on the first read of each missing file. It is the analog of
// the dashboard's browser-local storage and is assumed always available, so
// its failures are returned as-is instead of being wrapped in
// ErrUnavailable.
type LocalStore struct {
	mu  sync.Mutex
	dir string
}

// NewLocalStore creates the data directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Name identifies the backend in logs.
func (s *LocalStore) Name() string { return "local" }

func (s *LocalStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// load reads a collection file into v, seeding the file first if it does
// not exist yet. Corrupt JSON propagates to the caller.
func (s *LocalStore) load(collection string, v interface{}, seed interface{}) error {
	path := s.path(collection)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data, err = json.MarshalIndent(seed, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling seed for %s: %w", collection, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("seeding %s: %w", collection, err)
		}
		zap.S().Infow("seeded local collection", "collection", collection)
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", collection, err)
	}
	return nil
}

func (s *LocalStore) save(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}

func (s *LocalStore) loadCases() ([]models.Case, error) {
	var cases []models.Case
	if err := s.load(CasesCollection, &cases, SeedCases()); err != nil {
		return nil, err
	}
	return cases, nil
}

func (s *LocalStore) loadDetails() (map[string]models.CaseDetail, error) {
	var details map[string]models.CaseDetail
	if err := s.load(CaseDetailsCollection, &details, SeedCaseDetails()); err != nil {
		return nil, err
	}
	return details, nil
}

// ReadAllCases returns the persisted case summaries, seeding on first read.
func (s *LocalStore) ReadAllCases(_ context.Context) ([]models.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCases()
}

// ReadAllGroups returns the persisted case groups, seeding on first read.
func (s *LocalStore) ReadAllGroups(_ context.Context) ([]models.CaseGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var groups []models.CaseGroup
	if err := s.load(GroupsCollection, &groups, SeedGroups()); err != nil {
		return nil, err
	}
	return groups, nil
}

// ReadCaseDetail returns one case detail by id, ErrNotFound on a miss.
func (s *LocalStore) ReadCaseDetail(_ context.Context, id string) (*models.CaseDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	details, err := s.loadDetails()
	if err != nil {
		return nil, err
	}
	detail, ok := details[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &detail, nil
}

// UpsertCase replaces the summary entry with a matching id, or appends the
// summary when no entry matches, so an id can never occur twice.
func (s *LocalStore) UpsertCase(_ context.Context, c models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cases, err := s.loadCases()
	if err != nil {
		return err
	}
	replaced := false
	for i := range cases {
		if cases[i].ID == c.ID {
			cases[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		cases = append(cases, c)
	}
	return s.save(CasesCollection, cases)
}

// UpsertCaseDetail overwrites the detail entry keyed by id.
func (s *LocalStore) UpsertCaseDetail(_ context.Context, d models.CaseDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	details, err := s.loadDetails()
	if err != nil {
		return err
	}
	details[d.ID] = d
	return s.save(CaseDetailsCollection, details)
}

// DeleteCase removes the summary entry unconditionally; a missing id is not
// an error.
func (s *LocalStore) DeleteCase(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cases, err := s.loadCases()
	if err != nil {
		return err
	}
	remaining := cases[:0]
	for _, c := range cases {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	return s.save(CasesCollection, remaining)
}

// DeleteCaseDetail removes the detail entry if present.
func (s *LocalStore) DeleteCaseDetail(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	details, err := s.loadDetails()
	if err != nil {
		return err
	}
	if _, ok := details[id]; !ok {
		return nil
	}
	delete(details, id)
	return s.save(CaseDetailsCollection, details)
}

// GetUsers returns the persisted users, seeding the default admin on first
// read.
func (s *LocalStore) GetUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers()
}

func (s *LocalStore) loadUsers() ([]models.User, error) {
	var users []models.User
	if err := s.load(UsersCollection, &users, SeedUsers()); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUser appends a user to the users collection. Username uniqueness is
// the registration flow's job, not this layer's.
func (s *LocalStore) SaveUser(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	users = append(users, u)
	return s.save(UsersCollection, users)
}

// ExportData serializes all four collections into one bundle, seeding any
// collection that has never been read.
func (s *LocalStore) ExportData(_ context.Context) (models.ExportBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := models.ExportBundle{ExportDate: time.Now().UTC().Format(time.RFC3339)}
	var err error
	if bundle.Users, err = s.loadUsers(); err != nil {
		return models.ExportBundle{}, err
	}
	if bundle.Cases, err = s.loadCases(); err != nil {
		return models.ExportBundle{}, err
	}
	if err = s.load(GroupsCollection, &bundle.Groups, SeedGroups()); err != nil {
		return models.ExportBundle{}, err
	}
	if bundle.CaseDetails, err = s.loadDetails(); err != nil {
		return models.ExportBundle{}, err
	}
	return bundle, nil
}

// ImportData parses one JSON bundle and overwrites each collection whose key
// is present, leaving absent collections untouched. The parse happens before
// any write, so a malformed file changes nothing.
func (s *LocalStore) ImportData(data []byte) error {
	var bundle models.ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bundle.Users != nil {
		if err := s.save(UsersCollection, bundle.Users); err != nil {
			return err
		}
	}
	if bundle.Cases != nil {
		if err := s.save(CasesCollection, bundle.Cases); err != nil {
			return err
		}
	}
	if bundle.Groups != nil {
		if err := s.save(GroupsCollection, bundle.Groups); err != nil {
			return err
		}
	}
	if bundle.CaseDetails != nil {
		if err := s.save(CaseDetailsCollection, bundle.CaseDetails); err != nil {
			return err
		}
	}
	zap.S().Infow("imported local data",
		"users", len(bundle.Users),
		"cases", len(bundle.Cases),
		"groups", len(bundle.Groups),
		"details", len(bundle.CaseDetails),
	)
	return nil
}
