package store

import (
	"context"
	"sync"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

// Memory is the in-process backend: per-owner slices behind a single mutex.
// The dashboard's reference behavior is session-lifetime in-memory state;
// the mutex is what keeps that behavior safe once mutations arrive from
// concurrent request handlers instead of a single UI thread.
type Memory struct {
	mu           sync.Mutex
	posts        map[string][]*models.Post
	platforms    map[string][]*models.Platform
	usersByID    map[string]*models.User
	usersByEmail map[string]string
	seeded       map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		posts:        make(map[string][]*models.Post),
		platforms:    make(map[string][]*models.Platform),
		usersByID:    make(map[string]*models.User),
		usersByEmail: make(map[string]string),
		seeded:       make(map[string]struct{}),
	}
}

// ensureSeeded populates a fresh owner partition from the demo dataset.
// Runs at most once per owner: a partition the owner has emptied stays
// empty. Callers must hold mu.
func (m *Memory) ensureSeeded(ownerID string) {
	if _, ok := m.seeded[ownerID]; ok {
		return
	}
	m.seeded[ownerID] = struct{}{}

	for _, p := range DemoPosts(time.Now()) {
		p.OwnerID = ownerID
		m.posts[ownerID] = append(m.posts[ownerID], p)
	}
	for _, pl := range DemoPlatforms() {
		pl.OwnerID = ownerID
		m.platforms[ownerID] = append(m.platforms[ownerID], pl)
	}
}

func (m *Memory) List(ctx context.Context, ownerID string) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	posts := make([]*models.Post, 0, len(m.posts[ownerID]))
	for _, p := range m.posts[ownerID] {
		posts = append(posts, p.Clone())
	}
	return posts, nil
}

func (m *Memory) GetByID(ctx context.Context, ownerID, id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	for _, p := range m.posts[ownerID] {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, ownerID string, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	clone := post.Clone()
	clone.OwnerID = ownerID
	m.posts[ownerID] = append(m.posts[ownerID], clone)
	return nil
}

func (m *Memory) Update(ctx context.Context, ownerID string, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	for i, p := range m.posts[ownerID] {
		if p.ID == post.ID {
			clone := post.Clone()
			clone.OwnerID = ownerID
			m.posts[ownerID][i] = clone
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	partition := m.posts[ownerID]
	for i, p := range partition {
		if p.ID == id {
			m.posts[ownerID] = append(partition[:i], partition[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ListPlatforms(ctx context.Context, ownerID string) ([]*models.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	platforms := make([]*models.Platform, 0, len(m.platforms[ownerID]))
	for _, p := range m.platforms[ownerID] {
		platforms = append(platforms, p.Clone())
	}
	return platforms, nil
}

func (m *Memory) GetPlatformByID(ctx context.Context, ownerID, id string) (*models.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	for _, p := range m.platforms[ownerID] {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SetPlatformConnected(ctx context.Context, ownerID, id string, connected bool) (*models.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSeeded(ownerID)

	for _, p := range m.platforms[ownerID] {
		if p.ID == id {
			p.Connected = connected
			if connected {
				p.Pages = CatalogPages(p.Name)
			} else {
				p.Pages = nil
			}
			return p.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.usersByID[id]
	if !ok {
		return nil, false, nil
	}
	u := *user
	return &u, true, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.usersByEmail[email]
	if !ok {
		return nil, false, nil
	}
	u := *m.usersByID[id]
	return &u, true, nil
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := *user
	m.usersByID[u.ID] = &u
	m.usersByEmail[u.Email] = u.ID
	return nil
}

// Platforms returns the PlatformStore view of m.
func (m *Memory) Platforms() PlatformStore {
	return &memoryPlatforms{m: m}
}

// Users returns the UserStore view of m.
func (m *Memory) Users() UserStore {
	return &memoryUsers{m: m}
}

type memoryPlatforms struct {
	m *Memory
}

func (s *memoryPlatforms) List(ctx context.Context, ownerID string) ([]*models.Platform, error) {
	return s.m.ListPlatforms(ctx, ownerID)
}

func (s *memoryPlatforms) GetByID(ctx context.Context, ownerID, id string) (*models.Platform, error) {
	return s.m.GetPlatformByID(ctx, ownerID, id)
}

func (s *memoryPlatforms) SetConnected(ctx context.Context, ownerID, id string, connected bool) (*models.Platform, error) {
	return s.m.SetPlatformConnected(ctx, ownerID, id, connected)
}

type memoryUsers struct {
	m *Memory
}

func (s *memoryUsers) GetByID(ctx context.Context, id string) (*models.User, bool, error) {
	return s.m.GetUserByID(ctx, id)
}

func (s *memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return s.m.GetUserByEmail(ctx, email)
}

func (s *memoryUsers) Create(ctx context.Context, user *models.User) error {
	return s.m.CreateUser(ctx, user)
}
