package valorant

import "context"

// Bundle represents a store bundle
type Bundle struct {
	UUID                 string `json:"uuid"`
	DisplayName          string `json:"displayName"`
	DisplayNameSubText   string `json:"displayNameSubText"`
	Description          string `json:"description"`
	ExtraDescription     string `json:"extraDescription"`
	PromoDescription     string `json:"promoDescription"`
	UseAdditionalContext bool   `json:"useAdditionalContext"`
	DisplayIcon          string `json:"displayIcon"`
	DisplayIcon2         string `json:"displayIcon2"`
	LogoIcon             string `json:"logoIcon"`
	VerticalPromoImage   string `json:"verticalPromoImage"`
	AssetPath            string `json:"assetPath"`
}

// String returns the localized display name
func (b Bundle) String() string {
	return b.DisplayName
}

// BundlesService exposes the /bundles endpoints
type BundlesService struct {
	client *Client
}

// FetchAll fetches every bundle
func (s *BundlesService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Bundle, error) {
	return fetchList[Bundle](ctx, s.client, "/bundles", opts)
}

// FetchByUUID fetches a single bundle
func (s *BundlesService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Bundle, error) {
	return fetchOne[Bundle](ctx, s.client, "/bundles/"+uuid, opts)
}
