package valorant

import "context"

// Buddy represents a weapon charm
type Buddy struct {
	UUID               string       `json:"uuid"`
	DisplayName        string       `json:"displayName"`
	IsHiddenIfNotOwned bool         `json:"isHiddenIfNotOwned"`
	ThemeUUID          string       `json:"themeUuid"`
	DisplayIcon        string       `json:"displayIcon"`
	AssetPath          string       `json:"assetPath"`
	Levels             []BuddyLevel `json:"levels"`
}

// String returns the localized display name
func (b Buddy) String() string {
	return b.DisplayName
}

// BuddyLevel is one upgrade level of a weapon charm
type BuddyLevel struct {
	UUID           string `json:"uuid"`
	CharmLevel     int    `json:"charmLevel"`
	HideIfNotOwned bool   `json:"hideIfNotOwned"`
	DisplayName    string `json:"displayName"`
	DisplayIcon    string `json:"displayIcon"`
	AssetPath      string `json:"assetPath"`
}

// String returns the localized display name
func (l BuddyLevel) String() string {
	return l.DisplayName
}

// BuddiesService exposes the /buddies endpoints
type BuddiesService struct {
	client *Client
}

// FetchAll fetches every weapon buddy
func (s *BuddiesService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Buddy, error) {
	return fetchList[Buddy](ctx, s.client, "/buddies", opts)
}

// FetchByUUID fetches a single weapon buddy
func (s *BuddiesService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Buddy, error) {
	return fetchOne[Buddy](ctx, s.client, "/buddies/"+uuid, opts)
}

// FetchAllLevels fetches every weapon buddy level
func (s *BuddiesService) FetchAllLevels(ctx context.Context, opts ...FetchOption) ([]BuddyLevel, error) {
	return fetchList[BuddyLevel](ctx, s.client, "/buddies/levels", opts)
}

// FetchLevelByUUID fetches a single weapon buddy level
func (s *BuddiesService) FetchLevelByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*BuddyLevel, error) {
	return fetchOne[BuddyLevel](ctx, s.client, "/buddies/levels/"+uuid, opts)
}
