// Package internal holds helpers shared by the codec packages.
package internal

import (
	"golang.org/x/sync/errgroup"
)

// Each calls fn(n) for every n in [0, count). With more than one worker the
// calls run concurrently, at most workers at a time; fn must only write to
// storage indexed by n.
func Each(count int, workers int, fn func(n int)) {
	if workers <= 1 || count <= 1 {
		for n := range count {
			fn(n)
		}
		return
	}

	var group errgroup.Group
	group.SetLimit(workers)

	for n := range count {
		group.Go(func() error {
			fn(n)
			return nil
		})
	}

	_ = group.Wait()
}
