package valorant

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuddyLevelsEndpoints(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/buddies/levels":
			w.Write([]byte(`{"status":200,"data":[{"uuid":"lvl1","charmLevel":1,"displayName":"Buddy Level"}]}`))
		case "/buddies/levels/lvl1":
			w.Write([]byte(`{"status":200,"data":{"uuid":"lvl1","charmLevel":1,"displayName":"Buddy Level"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()

	levels, err := client.Buddies.FetchAllLevels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, 1, levels[0].CharmLevel)
	assert.Equal(t, "Buddy Level", levels[0].String())

	level, err := client.Buddies.FetchLevelByUUID(ctx, "lvl1")
	require.NoError(t, err)
	assert.Equal(t, "lvl1", level.UUID)
}

func TestGamemodeEquippablesEndpoints(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gamemodes/equippables":
			w.Write([]byte(`{"status":200,"data":[{"uuid":"eq1","displayName":"Snowball Launcher","category":"EEquippableCategory::Heavy"}]}`))
		case "/gamemodes/equippables/eq1":
			w.Write([]byte(`{"status":200,"data":{"uuid":"eq1","displayName":"Snowball Launcher"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()

	equippables, err := client.Gamemodes.FetchAllEquippables(ctx)
	require.NoError(t, err)
	require.Len(t, equippables, 1)
	assert.Equal(t, "Snowball Launcher", equippables[0].String())

	equippable, err := client.Gamemodes.FetchEquippableByUUID(ctx, "eq1")
	require.NoError(t, err)
	assert.Equal(t, "eq1", equippable.UUID)
}

func TestEventsDecodeTimes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"data":[{
			"uuid":"ev1",
			"displayName":"Snowball Fight",
			"startTime":"2020-12-15T00:00:00Z",
			"endTime":"2021-01-12T00:00:00Z"
		}]}`))
	})

	events, err := client.Events.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "Snowball Fight", event.String())
	assert.True(t, event.Active(time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, event.Active(time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestEventActiveZeroTimes(t *testing.T) {
	var event Event
	assert.False(t, event.Active(time.Now()))
}

func TestContractsNestedDecode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"data":[{
			"uuid":"c1",
			"displayName":"PLAY TO UNLOCK",
			"content":{
				"relationType":"Agent",
				"relationUuid":"abc",
				"chapters":[{
					"isEpilogue":false,
					"levels":[{"reward":{"type":"Spray","uuid":"s1","amount":1},"xp":2000}],
					"freeRewards":[{"type":"Title","uuid":"t1","amount":1,"isHighlighted":true}]
				}]
			}
		}]}`))
	})

	contracts, err := client.Contracts.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, contracts, 1)

	contract := contracts[0]
	assert.Equal(t, "PLAY TO UNLOCK", contract.String())
	require.NotNil(t, contract.Content)
	assert.Equal(t, "Agent", contract.Content.RelationType)
	require.Len(t, contract.Content.Chapters, 1)

	chapter := contract.Content.Chapters[0]
	require.Len(t, chapter.Levels, 1)
	require.NotNil(t, chapter.Levels[0].Reward)
	assert.Equal(t, "Spray", chapter.Levels[0].Reward.Type)
	assert.Equal(t, 2000, chapter.Levels[0].XP)
	require.Len(t, chapter.FreeRewards, 1)
	assert.True(t, chapter.FreeRewards[0].IsHighlighted)
}

func TestListEndpointPaths(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		fetch func(ctx context.Context, c *Client) (int, error)
	}{
		{
			name: "bundles",
			path: "/bundles",
			fetch: func(ctx context.Context, c *Client) (int, error) {
				list, err := c.Bundles.FetchAll(ctx)
				return len(list), err
			},
		},
		{
			name: "ceremonies",
			path: "/ceremonies",
			fetch: func(ctx context.Context, c *Client) (int, error) {
				list, err := c.Ceremonies.FetchAll(ctx)
				return len(list), err
			},
		},
		{
			name: "content tiers",
			path: "/contenttiers",
			fetch: func(ctx context.Context, c *Client) (int, error) {
				list, err := c.ContentTiers.FetchAll(ctx)
				return len(list), err
			},
		},
		{
			name: "currencies",
			path: "/currencies",
			fetch: func(ctx context.Context, c *Client) (int, error) {
				list, err := c.Currencies.FetchAll(ctx)
				return len(list), err
			},
		},
		{
			name: "gamemodes",
			path: "/gamemodes",
			fetch: func(ctx context.Context, c *Client) (int, error) {
				list, err := c.Gamemodes.FetchAll(ctx)
				return len(list), err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				w.Write([]byte(`{"status":200,"data":[{"uuid":"x1","displayName":"Entry"}]}`))
			})

			count, err := tt.fetch(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}
