package valorant

import "context"

// Gamemode represents a playable game mode
type Gamemode struct {
	UUID                  string                     `json:"uuid"`
	DisplayName           string                     `json:"displayName"`
	Description           string                     `json:"description"`
	Duration              string                     `json:"duration"`
	EconomyType           string                     `json:"economyType"`
	AllowsMatchTimeouts   bool                       `json:"allowsMatchTimeouts"`
	IsTeamVoiceAllowed    bool                       `json:"isTeamVoiceAllowed"`
	IsMinimapHidden       bool                       `json:"isMinimapHidden"`
	OrbCount              int                        `json:"orbCount"`
	RoundsPerHalf         int                        `json:"roundsPerHalf"`
	TeamRoles             []string                   `json:"teamRoles"`
	GameFeatureOverrides  []GamemodeFeatureOverride  `json:"gameFeatureOverrides"`
	GameRuleBoolOverrides []GamemodeRuleBoolOverride `json:"gameRuleBoolOverrides"`
	DisplayIcon           string                     `json:"displayIcon"`
	ListViewIconTall      string                     `json:"listViewIconTall"`
	AssetPath             string                     `json:"assetPath"`
}

// String returns the localized display name
func (g Gamemode) String() string {
	return g.DisplayName
}

// GamemodeFeatureOverride toggles a named game feature for the mode
type GamemodeFeatureOverride struct {
	FeatureName string `json:"featureName"`
	State       bool   `json:"state"`
}

// GamemodeRuleBoolOverride toggles a named game rule for the mode
type GamemodeRuleBoolOverride struct {
	RuleName string `json:"ruleName"`
	State    bool   `json:"state"`
}

// GamemodeEquippable represents a mode-specific equippable (melee,
// snowball launcher, ...)
type GamemodeEquippable struct {
	UUID           string `json:"uuid"`
	DisplayName    string `json:"displayName"`
	Category       string `json:"category"`
	DisplayIcon    string `json:"displayIcon"`
	KillStreamIcon string `json:"killStreamIcon"`
	AssetPath      string `json:"assetPath"`
}

// String returns the localized display name
func (g GamemodeEquippable) String() string {
	return g.DisplayName
}

// GamemodesService exposes the /gamemodes endpoints, including the
// nested equippables resource
type GamemodesService struct {
	client *Client
}

// FetchAll fetches every game mode
func (s *GamemodesService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Gamemode, error) {
	return fetchList[Gamemode](ctx, s.client, "/gamemodes", opts)
}

// FetchByUUID fetches a single game mode
func (s *GamemodesService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Gamemode, error) {
	return fetchOne[Gamemode](ctx, s.client, "/gamemodes/"+uuid, opts)
}

// FetchAllEquippables fetches every gamemode equippable
func (s *GamemodesService) FetchAllEquippables(ctx context.Context, opts ...FetchOption) ([]GamemodeEquippable, error) {
	return fetchList[GamemodeEquippable](ctx, s.client, "/gamemodes/equippables", opts)
}

// FetchEquippableByUUID fetches a single gamemode equippable
func (s *GamemodesService) FetchEquippableByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*GamemodeEquippable, error) {
	return fetchOne[GamemodeEquippable](ctx, s.client, "/gamemodes/equippables/"+uuid, opts)
}
