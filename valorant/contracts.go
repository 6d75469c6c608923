package valorant

import "context"

// Contract represents a battle pass or agent contract
type Contract struct {
	UUID                   string           `json:"uuid"`
	DisplayName            string           `json:"displayName"`
	DisplayIcon            string           `json:"displayIcon"`
	ShipIt                 bool             `json:"shipIt"`
	UseLevelVPCostOverride bool             `json:"useLevelVPCostOverride"`
	LevelVPCostOverride    int              `json:"levelVPCostOverride"`
	FreeRewardScheduleUUID string           `json:"freeRewardScheduleUuid"`
	Content                *ContractContent `json:"content"`
	AssetPath              string           `json:"assetPath"`
}

// String returns the localized display name
func (c Contract) String() string {
	return c.DisplayName
}

// ContractContent ties a contract to its related entity and chapters
type ContractContent struct {
	RelationType              string            `json:"relationType"`
	RelationUUID              string            `json:"relationUuid"`
	Chapters                  []ContractChapter `json:"chapters"`
	PremiumRewardScheduleUUID string            `json:"premiumRewardScheduleUuid"`
	PremiumVPCost             int               `json:"premiumVPCost"`
}

// ContractChapter groups contract levels with their free rewards
type ContractChapter struct {
	IsEpilogue  bool             `json:"isEpilogue"`
	Levels      []ContractLevel  `json:"levels"`
	FreeRewards []ContractReward `json:"freeRewards"`
}

// ContractLevel is a single progression step within a chapter
type ContractLevel struct {
	Reward                 *ContractReward `json:"reward"`
	XP                     int             `json:"xp"`
	VPCost                 int             `json:"vpCost"`
	IsPurchasableWithVP    bool            `json:"isPurchasableWithVP"`
	DoughCost              int             `json:"doughCost"`
	IsPurchasableWithDough bool            `json:"isPurchasableWithDough"`
}

// ContractReward references the entity granted at a level
type ContractReward struct {
	Type          string `json:"type"`
	UUID          string `json:"uuid"`
	Amount        int    `json:"amount"`
	IsHighlighted bool   `json:"isHighlighted"`
}

// ContractsService exposes the /contracts endpoints
type ContractsService struct {
	client *Client
}

// FetchAll fetches every contract
func (s *ContractsService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Contract, error) {
	return fetchList[Contract](ctx, s.client, "/contracts", opts)
}

// FetchByUUID fetches a single contract
func (s *ContractsService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Contract, error) {
	return fetchOne[Contract](ctx, s.client, "/contracts/"+uuid, opts)
}
