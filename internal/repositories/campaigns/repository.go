// Package campaigns persists campaigns and their play sessions.
package campaigns

import (
	"context"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

// Repository stores campaigns and sessions. Deleting a campaign removes its
// sessions; encounters linked to those sessions are the caller's concern.
type Repository interface {
	// Create saves a new campaign.
	// Returns errors.AlreadyExists if the id is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns a campaign.
	// Returns errors.NotFound if it does not exist.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns an owner's campaigns, oldest first.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a campaign and its sessions, returning the session ids.
	// Returns errors.NotFound if it does not exist.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// CreateSession saves a new session of an existing campaign.
	CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns a session.
	// Returns errors.NotFound if it does not exist.
	GetSession(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error)

	// ListSessions returns a campaign's sessions ordered by Order.
	ListSessions(ctx context.Context, input ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteSession removes a session.
	// Returns errors.NotFound if it does not exist.
	DeleteSession(ctx context.Context, input DeleteSessionInput) error
}

// CreateInput defines the input for creating a campaign
type CreateInput struct {
	Campaign *entities.Campaign
}

// CreateOutput defines the output for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// GetInput defines the input for getting a campaign
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// ListInput defines the input for listing campaigns
type ListInput struct {
	OwnerID string
}

// ListOutput defines the output for listing campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}

// DeleteInput defines the input for deleting a campaign
type DeleteInput struct {
	ID string
}

// DeleteOutput lists the sessions removed with the campaign
type DeleteOutput struct {
	DeletedSessionIDs []string
}

// CreateSessionInput defines the input for creating a session
type CreateSessionInput struct {
	Session *entities.Session
}

// CreateSessionOutput defines the output for creating a session
type CreateSessionOutput struct {
	Session *entities.Session
}

// GetSessionInput defines the input for getting a session
type GetSessionInput struct {
	ID string
}

// GetSessionOutput defines the output for getting a session
type GetSessionOutput struct {
	Session *entities.Session
}

// ListSessionsInput defines the input for listing a campaign's sessions
type ListSessionsInput struct {
	CampaignID string
}

// ListSessionsOutput defines the output for listing sessions
type ListSessionsOutput struct {
	Sessions []*entities.Session
}

// DeleteSessionInput defines the input for deleting a session
type DeleteSessionInput struct {
	ID string
}

const (
	errCampaignNil     = "campaign cannot be nil"
	errSessionNil      = "session cannot be nil"
	errIDEmpty         = "ID cannot be empty"
	errOwnerIDEmpty    = "owner ID cannot be empty"
	errCampaignIDEmpty = "campaign ID cannot be empty"
)

func validateCampaign(c *entities.Campaign) error {
	switch {
	case c == nil:
		return errors.InvalidArgument(errCampaignNil)
	case c.ID == "":
		return errors.InvalidArgument(errIDEmpty)
	case c.OwnerID == "":
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	return nil
}

func validateSession(s *entities.Session) error {
	switch {
	case s == nil:
		return errors.InvalidArgument(errSessionNil)
	case s.ID == "":
		return errors.InvalidArgument(errIDEmpty)
	case s.CampaignID == "":
		return errors.InvalidArgument(errCampaignIDEmpty)
	}
	return nil
}
