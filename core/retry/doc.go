// Package retry provides a generic retry combinator with a policy value.
//
// The combinator is independent of any transport: callers pass a closure and
// a Policy, and observe every failed attempt through Policy.OnRetry. Backoff
// intervals come from cenkalti/backoff.
//
//	ids, err := retry.Do(ctx, retry.Policy{InitialBackoff: 13 * time.Second}, func(ctx context.Context) ([]string, error) {
//	    return client.Search(ctx, username, category)
//	})
package retry
