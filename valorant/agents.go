package valorant

import (
	"context"
	"time"
)

// Agent represents a playable (or placeholder) character
type Agent struct {
	UUID                      string                `json:"uuid"`
	DisplayName               string                `json:"displayName"`
	Description               string                `json:"description"`
	DeveloperName             string                `json:"developerName"`
	CharacterTags             []string              `json:"characterTags"`
	DisplayIcon               string                `json:"displayIcon"`
	DisplayIconSmall          string                `json:"displayIconSmall"`
	BustPortrait              string                `json:"bustPortrait"`
	FullPortrait              string                `json:"fullPortrait"`
	FullPortraitV2            string                `json:"fullPortraitV2"`
	KillfeedPortrait          string                `json:"killfeedPortrait"`
	Background                string                `json:"background"`
	BackgroundGradientColors  []string              `json:"backgroundGradientColors"`
	IsFullPortraitRightFacing bool                  `json:"isFullPortraitRightFacing"`
	IsPlayableCharacter       bool                  `json:"isPlayableCharacter"`
	IsAvailableForTest        bool                  `json:"isAvailableForTest"`
	IsBaseContent             bool                  `json:"isBaseContent"`
	Role                      *AgentRole            `json:"role"`
	RecruitmentData           *AgentRecruitmentData `json:"recruitmentData"`
	Abilities                 []AgentAbility        `json:"abilities"`
	VoiceLine                 *AgentVoiceLine       `json:"voiceLine"`
	AssetPath                 string                `json:"assetPath"`
}

// String returns the localized display name
func (a Agent) String() string {
	return a.DisplayName
}

// AgentRole is the class an agent belongs to (Duelist, Controller, ...)
type AgentRole struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
	AssetPath   string `json:"assetPath"`
}

// String returns the localized role name
func (r AgentRole) String() string {
	return r.DisplayName
}

// AgentRecruitmentData describes the recruitment event window for an agent
type AgentRecruitmentData struct {
	CounterID              string    `json:"counterId"`
	MilestoneID            string    `json:"milestoneId"`
	MilestoneThreshold     int       `json:"milestoneThreshold"`
	UseLevelVPCostOverride bool      `json:"useLevelVpCostOverride"`
	LevelVPCostOverride    int       `json:"levelVpCostOverride"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
}

// AgentAbility is one of an agent's ability slots
type AgentAbility struct {
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
}

// String returns the localized ability name
func (a AgentAbility) String() string {
	return a.DisplayName
}

// AgentVoiceLine holds the selection voice line media
type AgentVoiceLine struct {
	MinDuration float64          `json:"minDuration"`
	MaxDuration float64          `json:"maxDuration"`
	MediaList   []VoiceLineMedia `json:"mediaList"`
}

// VoiceLineMedia is a single voice line asset reference
type VoiceLineMedia struct {
	ID    int    `json:"id"`
	Wwise string `json:"wwise"`
	Wave  string `json:"wave"`
}

// AgentsService exposes the /agents endpoints
type AgentsService struct {
	client *Client
}

// WithPlayableCharactersOnly adds the isPlayableCharacter filter,
// which the API recommends to drop duplicate non-playable records.
func WithPlayableCharactersOnly() FetchOption {
	return func(o *fetchOptions) {
		o.params.Set("isPlayableCharacter", "true")
	}
}

// FetchAll fetches every agent
func (s *AgentsService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Agent, error) {
	return fetchList[Agent](ctx, s.client, "/agents", opts)
}

// FetchByUUID fetches a single agent
func (s *AgentsService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Agent, error) {
	return fetchOne[Agent](ctx, s.client, "/agents/"+uuid, opts)
}
