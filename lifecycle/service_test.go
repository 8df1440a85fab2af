package lifecycle

import (
	"context"
	"time"

	"github.com/OpenStag/openstage-website/auth"
	"github.com/OpenStag/openstage-website/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Shared in-memory stubs for the store interfaces.

type stubDesignStore struct {
	designs   map[uuid.UUID]*models.Design
	createErr error
	updateErr error
}

func newStubDesignStore(designs ...*models.Design) *stubDesignStore {
	s := &stubDesignStore{designs: make(map[uuid.UUID]*models.Design)}
	for _, d := range designs {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		s.designs[d.ID] = d
	}
	return s
}

func (s *stubDesignStore) Create(ctx context.Context, design *models.Design) error {
	if s.createErr != nil {
		return s.createErr
	}
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	s.designs[design.ID] = design
	return nil
}

func (s *stubDesignStore) ByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	if design, ok := s.designs[id]; ok {
		copied := *design
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDesignStore) ByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Design, error) {
	if design, ok := s.designs[id]; ok && design.UserID == ownerID {
		copied := *design
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDesignStore) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error) {
	var out []models.Design
	for _, d := range s.designs {
		if d.UserID == ownerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *stubDesignStore) ByStatuses(ctx context.Context, statuses []models.DesignStatus) ([]models.Design, error) {
	var out []models.Design
	for _, d := range s.designs {
		for _, status := range statuses {
			if d.Status == status {
				out = append(out, *d)
				break
			}
		}
	}
	return out, nil
}

func (s *stubDesignStore) Update(ctx context.Context, design *models.Design) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	copied := *design
	s.designs[design.ID] = &copied
	return nil
}

func (s *stubDesignStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.designs, id)
	return nil
}

type stubHistoryStore struct {
	entries   []models.DesignStatusHistory
	appendErr error
}

func (s *stubHistoryStore) Append(ctx context.Context, entry *models.DesignStatusHistory) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubHistoryStore) ForDesign(ctx context.Context, designID uuid.UUID) ([]models.DesignStatusHistory, error) {
	var out []models.DesignStatusHistory
	for _, e := range s.entries {
		if e.DesignID == designID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubTeamStore struct {
	members    []models.DevelopmentTeamMember
	countErr   error
	membersErr error
	userErr    error
	addErr     error
}

func (s *stubTeamStore) MembersFor(ctx context.Context, designID uuid.UUID) ([]models.DevelopmentTeamMember, error) {
	if s.membersErr != nil {
		return nil, s.membersErr
	}
	var out []models.DevelopmentTeamMember
	for _, m := range s.members {
		if m.DesignID == designID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubTeamStore) CountFor(ctx context.Context, designID uuid.UUID) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	count := 0
	for _, m := range s.members {
		if m.DesignID == designID {
			count++
		}
	}
	return count, nil
}

func (s *stubTeamStore) MembershipsForUser(ctx context.Context, userID uuid.UUID) ([]models.DevelopmentTeamMember, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	var out []models.DevelopmentTeamMember
	for _, m := range s.members {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubTeamStore) Add(ctx context.Context, member *models.DevelopmentTeamMember) error {
	if s.addErr != nil {
		return s.addErr
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	s.members = append(s.members, *member)
	return nil
}

type stubProfileStore struct {
	profiles        map[uuid.UUID]*models.Profile
	createErr       error
	failFirstLookup bool
	lookups         int
}

func newStubProfileStore(profiles ...*models.Profile) *stubProfileStore {
	s := &stubProfileStore{profiles: make(map[uuid.UUID]*models.Profile)}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *stubProfileStore) ByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	s.lookups++
	if s.failFirstLookup && s.lookups == 1 {
		return nil, gorm.ErrRecordNotFound
	}
	if profile, ok := s.profiles[id]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *stubProfileStore) Update(ctx context.Context, profile *models.Profile) error {
	s.profiles[profile.ID] = profile
	return nil
}

type stubAchievementStore struct {
	awards []models.UserAchievement
}

func (s *stubAchievementStore) AwardsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error) {
	var out []models.UserAchievement
	for _, a := range s.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// testEnv bundles a service with its stubs, pinned to a fixed clock.
type testEnv struct {
	svc          *Service
	designs      *stubDesignStore
	history      *stubHistoryStore
	teams        *stubTeamStore
	profiles     *stubProfileStore
	achievements *stubAchievementStore
	now          time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		designs:      newStubDesignStore(),
		history:      &stubHistoryStore{},
		teams:        &stubTeamStore{},
		profiles:     newStubProfileStore(),
		achievements: &stubAchievementStore{},
		now:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	env.svc = NewService(env.designs, env.history, env.teams, env.profiles, env.achievements)
	env.svc.logger = zerolog.Nop()
	env.svc.now = func() time.Time { return env.now }
	return env
}

func testIdentity() *auth.Identity {
	return &auth.Identity{
		ID:        uuid.New(),
		Email:     "student@example.org",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func adminProfile(id uuid.UUID) *models.Profile {
	return &models.Profile{ID: id, Email: "admin@example.org", Role: models.RoleAdmin}
}

func undefinedTableErr() error {
	return &pgconn.PgError{Code: "42P01", Message: `relation "development_team_members" does not exist`}
}

func uniqueViolationErr() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}
