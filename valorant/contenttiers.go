package valorant

import "context"

// ContentTier represents a skin rarity tier
type ContentTier struct {
	UUID           string `json:"uuid"`
	DisplayName    string `json:"displayName"`
	DevName        string `json:"devName"`
	Rank           int    `json:"rank"`
	JuiceValue     int    `json:"juiceValue"`
	JuiceCost      int    `json:"juiceCost"`
	HighlightColor string `json:"highlightColor"`
	DisplayIcon    string `json:"displayIcon"`
	AssetPath      string `json:"assetPath"`
}

// String returns the localized display name
func (c ContentTier) String() string {
	return c.DisplayName
}

// ContentTiersService exposes the /contenttiers endpoints
type ContentTiersService struct {
	client *Client
}

// FetchAll fetches every content tier
func (s *ContentTiersService) FetchAll(ctx context.Context, opts ...FetchOption) ([]ContentTier, error) {
	return fetchList[ContentTier](ctx, s.client, "/contenttiers", opts)
}

// FetchByUUID fetches a single content tier
func (s *ContentTiersService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*ContentTier, error) {
	return fetchOne[ContentTier](ctx, s.client, "/contenttiers/"+uuid, opts)
}
