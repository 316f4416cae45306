package campaign

import "github.com/KirkDiggler/rpg-gm-api/internal/entities"

// CreateCampaignInput defines the request for creating a campaign
type CreateCampaignInput struct {
	OwnerID     string
	Name        string
	Description string
	PartySize   int
	// Initialization, when set, seeds session 0 with a starting reward.
	Initialization *entities.CampaignInitialization
}

// CreateCampaignOutput defines the response for creating a campaign
type CreateCampaignOutput struct {
	Campaign *entities.Campaign
	// InitialSession and InitialEncounter are set when the campaign was initialized.
	InitialSession   *entities.Session
	InitialEncounter *entities.Encounter
}

// GetCampaignInput defines the request for getting a campaign
type GetCampaignInput struct {
	OwnerID    string
	CampaignID string
}

// GetCampaignOutput defines the response for getting a campaign
type GetCampaignOutput struct {
	Campaign *entities.Campaign
	Sessions []*entities.Session
}

// ListCampaignsInput defines the request for listing campaigns
type ListCampaignsInput struct {
	OwnerID string
}

// ListCampaignsOutput defines the response for listing campaigns
type ListCampaignsOutput struct {
	Campaigns []*entities.Campaign
}

// DeleteCampaignInput defines the request for deleting a campaign
type DeleteCampaignInput struct {
	OwnerID    string
	CampaignID string
}

// DeleteCampaignOutput defines the response for deleting a campaign
type DeleteCampaignOutput struct {
	DeletedSessions   int
	DeletedEncounters int
}

// CreateSessionInput defines the request for adding a session
type CreateSessionInput struct {
	OwnerID     string
	CampaignID  string
	Name        string
	Description string
}

// CreateSessionOutput defines the response for adding a session
type CreateSessionOutput struct {
	Session *entities.Session
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	OwnerID    string
	CampaignID string
	SessionID  string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct {
	DeletedEncounters int
}

// GetStatsInput defines the request for campaign stats
type GetStatsInput struct {
	OwnerID    string
	CampaignID string
}

// GetStatsOutput defines the response for campaign stats
type GetStatsOutput struct {
	Stats *entities.CampaignStats
}
