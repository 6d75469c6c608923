package valorant

import "context"

// Currency represents an in-game currency (VP, Radianite, ...)
type Currency struct {
	UUID                string `json:"uuid"`
	DisplayName         string `json:"displayName"`
	DisplayNameSingular string `json:"displayNameSingular"`
	DisplayIcon         string `json:"displayIcon"`
	LargeIcon           string `json:"largeIcon"`
	RewardPreviewIcon   string `json:"rewardPreviewIcon"`
	AssetPath           string `json:"assetPath"`
}

// String returns the localized display name
func (c Currency) String() string {
	return c.DisplayName
}

// CurrenciesService exposes the /currencies endpoints
type CurrenciesService struct {
	client *Client
}

// FetchAll fetches every currency
func (s *CurrenciesService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Currency, error) {
	return fetchList[Currency](ctx, s.client, "/currencies", opts)
}

// FetchByUUID fetches a single currency
func (s *CurrenciesService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Currency, error) {
	return fetchOne[Currency](ctx, s.client, "/currencies/"+uuid, opts)
}
