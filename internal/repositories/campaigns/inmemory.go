package campaigns

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu        sync.RWMutex
	campaigns map[string]entities.Campaign
	sessions  map[string]entities.Session
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		campaigns: make(map[string]entities.Campaign),
		sessions:  make(map[string]entities.Session),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new campaign
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[input.Campaign.ID]; exists {
		return nil, errors.AlreadyExistsf("campaign %s already exists", input.Campaign.ID)
	}
	r.campaigns[input.Campaign.ID] = *input.Campaign

	return &CreateOutput{Campaign: input.Campaign}, nil
}

// Get retrieves a campaign by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.campaigns[input.ID]
	if !exists {
		return nil, errors.NotFoundf("campaign %s not found", input.ID)
	}

	return &GetOutput{Campaign: &c}, nil
}

// List returns an owner's campaigns
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Campaign, 0)
	for _, c := range r.campaigns {
		if c.OwnerID == input.OwnerID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})

	return &ListOutput{Campaigns: out}, nil
}

// Delete removes a campaign and its sessions
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[input.ID]; !exists {
		return nil, errors.NotFoundf("campaign %s not found", input.ID)
	}
	delete(r.campaigns, input.ID)

	deleted := make([]string, 0)
	for id, s := range r.sessions {
		if s.CampaignID == input.ID {
			delete(r.sessions, id)
			deleted = append(deleted, id)
		}
	}

	return &DeleteOutput{DeletedSessionIDs: deleted}, nil
}

// CreateSession stores a new session
func (r *InMemoryRepository) CreateSession(_ context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[input.Session.CampaignID]; !exists {
		return nil, errors.NotFoundf("campaign %s not found", input.Session.CampaignID)
	}
	if _, exists := r.sessions[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}
	r.sessions[input.Session.ID] = *input.Session

	return &CreateSessionOutput{Session: input.Session}, nil
}

// GetSession retrieves a session by ID
func (r *InMemoryRepository) GetSession(_ context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sessions[input.ID]
	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &GetSessionOutput{Session: &s}, nil
}

// ListSessions returns a campaign's sessions
func (r *InMemoryRepository) ListSessions(_ context.Context, input ListSessionsInput) (*ListSessionsOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Session, 0)
	for _, s := range r.sessions {
		if s.CampaignID == input.CampaignID {
			s := s
			out = append(out, &s)
		}
	}
	sortSessions(out)

	return &ListSessionsOutput{Sessions: out}, nil
}

// DeleteSession removes a session
func (r *InMemoryRepository) DeleteSession(_ context.Context, input DeleteSessionInput) error {
	if input.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[input.ID]; !exists {
		return errors.NotFoundf("session %s not found", input.ID)
	}
	delete(r.sessions, input.ID)

	return nil
}
