package valorant

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production valorant-api.com endpoint
const DefaultBaseURL = "https://valorant-api.com/v1"

const (
	defaultTimeout   = 30 * time.Second
	defaultCacheSize = 128
)

// Client represents a valorant-api.com client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	language   Language
	httpClient *http.Client
	logger     zerolog.Logger
	cache      *memoCache

	Agents           *AgentsService
	Buddies          *BuddiesService
	Bundles          *BundlesService
	Ceremonies       *CeremoniesService
	CompetitiveTiers *CompetitiveTiersService
	ContentTiers     *ContentTiersService
	Contracts        *ContractsService
	Currencies       *CurrenciesService
	Events           *EventsService
	Gamemodes        *GamemodesService
}

// NewClient creates a new client. The zero configuration targets the
// production API in English with a bounded in-memory cache.
func NewClient(opts ...Option) (*Client, error) {
	o := clientOptions{
		baseURL:   DefaultBaseURL,
		language:  LanguageEnglish,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.language.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, o.language)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		language:   o.language,
		httpClient: httpClient,
		logger:     o.logger,
		cache:      newMemoCache(o.cacheSize, o.cacheTTL),
	}

	c.Agents = &AgentsService{client: c}
	c.Buddies = &BuddiesService{client: c}
	c.Bundles = &BundlesService{client: c}
	c.Ceremonies = &CeremoniesService{client: c}
	c.CompetitiveTiers = &CompetitiveTiersService{client: c}
	c.ContentTiers = &ContentTiersService{client: c}
	c.Contracts = &ContractsService{client: c}
	c.Currencies = &CurrenciesService{client: c}
	c.Events = &EventsService{client: c}
	c.Gamemodes = &GamemodesService{client: c}

	return c, nil
}

// Language returns the display language selected at construction
func (c *Client) Language() Language {
	return c.language
}

// ClearCache drops every memoized response
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// CacheLen returns the number of memoized responses
func (c *Client) CacheLen() int {
	return c.cache.Len()
}
