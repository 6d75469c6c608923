package valorant

import (
	"context"
	"time"
)

// Event represents a time-bound in-game event
type Event struct {
	UUID             string    `json:"uuid"`
	DisplayName      string    `json:"displayName"`
	ShortDisplayName string    `json:"shortDisplayName"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	AssetPath        string    `json:"assetPath"`
}

// String returns the localized display name
func (e Event) String() string {
	return e.DisplayName
}

// Active reports whether the event window contains the given time
func (e Event) Active(at time.Time) bool {
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return false
	}
	return !at.Before(e.StartTime) && at.Before(e.EndTime)
}

// EventsService exposes the /events endpoints
type EventsService struct {
	client *Client
}

// FetchAll fetches every event
func (s *EventsService) FetchAll(ctx context.Context, opts ...FetchOption) ([]Event, error) {
	return fetchList[Event](ctx, s.client, "/events", opts)
}

// FetchByUUID fetches a single event
func (s *EventsService) FetchByUUID(ctx context.Context, uuid string, opts ...FetchOption) (*Event, error) {
	return fetchOne[Event](ctx, s.client, "/events/"+uuid, opts)
}
