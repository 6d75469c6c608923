package valorant

import "context"

// Ceremony represents a round-end ceremony (Ace, Clutch, Flawless, ...)
type Ceremony struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	AssetPath   string `json:"assetPath"`
}

// String returns the localized display name
func (c Ceremony) String() string {
	return c.DisplayName
}

// CeremoniesService exposes the /ceremonies endpoints
type CeremoniesService struct {
	client *Client
}

// FetchAll fetches every ceremony
func (s *CeremoniesService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Ceremony, error) {
	return fetchList[Ceremony](ctx, s.client, "/ceremonies", opts)
}

// FetchByUUID fetches a single ceremony
func (s *CeremoniesService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Ceremony, error) {
	return fetchOne[Ceremony](ctx, s.client, "/ceremonies/"+uuid, opts)
}
