package valorant

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result carries the outcome of an asynchronous fetch.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn on its own goroutine and delivers the outcome on the
// returned channel. The channel is buffered and closed after the
// single send, so an abandoned receiver never blocks the producer.
//
//	ch := valorant.Async(func() ([]valorant.Agent, error) {
//		return client.Agents.FetchAll(ctx)
//	})
//	res := <-ch
func Async[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn()
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// prefetchConcurrency limits parallel requests during PrefetchAll
const prefetchConcurrency = 4

// PrefetchAll warms the memo cache by fetching every list endpoint
// concurrently. The first failure cancels the remaining fetches.
func (c *Client) PrefetchAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)

	g.Go(func() error {
		_, err := c.Agents.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Buddies.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Buddies.FetchAllLevels(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Bundles.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Ceremonies.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.CompetitiveTiers.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.ContentTiers.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Contracts.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Currencies.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Events.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Gamemodes.FetchAll(ctx, WithCached())
		return err
	})
	g.Go(func() error {
		_, err := c.Gamemodes.FetchAllEquippables(ctx, WithCached())
		return err
	})

	return g.Wait()
}
