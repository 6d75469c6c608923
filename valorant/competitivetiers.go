package valorant

import (
	"context"
	"strings"
)

// CompetitiveTier represents one episode's ranked tier table
type CompetitiveTier struct {
	UUID            string `json:"uuid"`
	AssetObjectName string `json:"assetObjectName"`
	Tiers           []Tier `json:"tiers"`
	AssetPath       string `json:"assetPath"`
}

// Tier is a single rank within an episode's tier table
type Tier struct {
	Tier                 int    `json:"tier"`
	TierName             string `json:"tierName"`
	Division             string `json:"division"`
	DivisionName         string `json:"divisionName"`
	Color                string `json:"color"`
	BackgroundColor      string `json:"backgroundColor"`
	SmallIcon            string `json:"smallIcon"`
	LargeIcon            string `json:"largeIcon"`
	RankTriangleDownIcon string `json:"rankTriangleDownIcon"`
	RankTriangleUpIcon   string `json:"rankTriangleUpIcon"`
}

// String returns the localized tier name
func (t Tier) String() string {
	return t.TierName
}

// unusedTierMarker appears in the names of the placeholder ranks the
// API returns between real divisions
const unusedTierMarker = "Unused"

// CompetitiveTiersService exposes the /competitivetiers endpoints
type CompetitiveTiersService struct {
	client *Client
}

// WithoutUnusedTiers drops the placeholder ranks whose name contains
// "Unused" from fetched tier tables. This filter is client-side; the
// API has no equivalent parameter.
func WithoutUnusedTiers() FetchOption {
	return func(o *fetchOptions) {
		o.removeUnused = true
	}
}

// FetchAll fetches every episode's tier table
func (s *CompetitiveTiersService) FetchAll(ctx context.Context, opts ...FetchOption) ([]CompetitiveTier, error) {
	episodes, err := fetchList[CompetitiveTier](ctx, s.client, "/competitivetiers", opts)
	if err != nil {
		return nil, err
	}
	if o := newFetchOptions(opts); o.removeUnused {
		return removeUnusedTiers(episodes), nil
	}
	return episodes, nil
}

// FetchByUUID fetches a single episode's tier table
func (s *CompetitiveTiersService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*CompetitiveTier, error) {
	return fetchOne[CompetitiveTier](ctx, s.client, "/competitivetiers/"+uuid, opts)
}

// removeUnusedTiers rebuilds each episode with a filtered tier slice.
// Fetched (and possibly cached) values are never mutated.
func removeUnusedTiers(episodes []CompetitiveTier) []CompetitiveTier {
	out := make([]CompetitiveTier, 0, len(episodes))
	for _, episode := range episodes {
		kept := make([]Tier, 0, len(episode.Tiers))
		for _, tier := range episode.Tiers {
			if strings.Contains(tier.TierName, unusedTierMarker) {
				continue
			}
			kept = append(kept, tier)
		}
		episode.Tiers = kept
		out = append(out, episode)
	}
	return out
}
