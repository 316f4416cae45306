package entities

// Campaign groups sessions played by one party.
type Campaign struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// PartySize is the current roster size, used to scale expected treasure.
	PartySize int   `json:"party_size"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// CampaignInitialization seeds a new campaign with a starting reward.
type CampaignInitialization struct {
	Experience int      `json:"experience"`
	Gold       float64  `json:"gold"`
	Items      []string `json:"items,omitempty"`
}

// Session is one play session of a campaign.
type Session struct {
	ID          string `json:"id"`
	CampaignID  string `json:"campaign_id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	CreatedAt   int64  `json:"created_at"`
}

// CampaignStats is derived from a campaign's encounter history on demand.
type CampaignStats struct {
	CampaignID string `json:"campaign_id"`
	PartySize  int    `json:"party_size"`

	NumSessions             int `json:"num_sessions"`
	NumAccomplishments      int `json:"num_accomplishments"`
	NumCombatEncounters     int `json:"num_combat_encounters"`
	NumSubsystemEncounters  int `json:"num_subsystem_encounters"`
	NumUnresolvedReferences int `json:"num_unresolved_references"`

	TotalExperience            int     `json:"total_experience"`
	Level                      int     `json:"level"`
	ExperienceThisLevel        int     `json:"experience_this_level"`
	TotalTreasureItemsValue    float64 `json:"total_treasure_items_value"`
	TotalTreasureCurrencyValue float64 `json:"total_treasure_currency_value"`
	TotalCombinedTreasureValue float64 `json:"total_combined_treasure_value"`

	ExpectedTreasureStartOfLevel float64 `json:"expected_total_treasure_start_of_level"`
	ExpectedTreasureEndOfLevel   float64 `json:"expected_total_treasure_end_of_level"`
	ExpectedTreasure             float64 `json:"expected_total_treasure"`

	Encounters []EncounterStats `json:"encounters"`
}

// EncounterStats is one row of the running campaign totals.
type EncounterStats struct {
	SessionID   string   `json:"session_id"`
	EncounterID string   `json:"encounter_id"`
	Kind        KindType `json:"kind"`

	TotalExperience int     `json:"total_experience"`
	TotalItemsValue float64 `json:"total_items_value"`
	Currency        float64 `json:"treasure_currency"`

	AccumulatedExperience int     `json:"accumulated_experience"`
	AccumulatedItemsValue float64 `json:"accumulated_items_value"`
	AccumulatedCurrency   float64 `json:"accumulated_currency"`

	CalculatedExpectedTreasure float64 `json:"calculated_expected_total_treasure"`
}
