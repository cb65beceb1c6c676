package usecase

import "sort"

// rankedCounter counts keys and breaks ties by first appearance
type rankedCounter struct {
	counts map[string]int
	order  []string
}

func newRankedCounter() *rankedCounter {
	return &rankedCounter{counts: make(map[string]int)}
}

func (c *rankedCounter) add(key string) {
	if key == "" {
		return
	}
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *rankedCounter) top() string {
	best := ""
	for _, k := range c.order {
		if best == "" || c.counts[k] > c.counts[best] {
			best = k
		}
	}
	return best
}

// ranked returns up to n keys by count descending; n <= 0 means all
func (c *rankedCounter) ranked(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
