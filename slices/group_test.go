package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authcorp/fputil/fn"
)

type account struct {
	Owner   string
	Balance int
}

func TestGroupMap(t *testing.T) {
	accounts := []account{
		{"ann", 10},
		{"bob", 5},
		{"ann", 7},
	}

	grouped := GroupMap(accounts,
		func(a account) string { return a.Owner },
		func(a account) int { return a.Balance },
	)

	assert.Equal(t, map[string][]int{"ann": {10, 7}, "bob": {5}}, grouped)
	assert.Empty(t, GroupMap(nil, func(a account) string { return a.Owner }, func(a account) int { return a.Balance }))
}

func TestGroupMapReduceSkipsIntermediateBuckets(t *testing.T) {
	accounts := []account{
		{"ann", 10},
		{"bob", 5},
		{"ann", 7},
	}

	totals := GroupMapReduce(accounts,
		func(a account) string { return a.Owner },
		func(a account) int { return a.Balance },
		func(a, b int) int { return a + b },
	)

	assert.Equal(t, map[string]int{"ann": 17, "bob": 5}, totals)
}

func TestGroupByMultiKey(t *testing.T) {
	grouped := GroupByMultiKey([]int{1, 2, 3}, func(n int) []int {
		if n%2 == 0 {
			return []int{0, n}
		}
		return []int{1}
	})

	assert.Equal(t, map[int][]int{0: {2}, 1: {1, 3}, 2: {2}}, grouped)
}

func TestUniqueByKeepsFirst(t *testing.T) {
	accounts := []account{
		{"ann", 10},
		{"bob", 5},
		{"ann", 7},
	}

	unique := UniqueBy(accounts, func(a account) string { return a.Owner })
	assert.Equal(t, []account{{"ann", 10}, {"bob", 5}}, unique)
}

func TestUniqueByKeepLast(t *testing.T) {
	accounts := []account{
		{"ann", 10},
		{"bob", 5},
		{"ann", 7},
	}

	unique := UniqueByKeepLast(accounts, func(a account) string { return a.Owner })
	assert.Equal(t, []account{{"ann", 7}, {"bob", 5}}, unique)
}

func TestUniqueByMerge(t *testing.T) {
	accounts := []account{
		{"ann", 10},
		{"bob", 5},
		{"ann", 7},
	}

	merged := UniqueByMerge(accounts,
		func(a account) string { return a.Owner },
		func(existing, next account) account { return account{existing.Owner, existing.Balance + next.Balance} },
	)
	assert.Equal(t, []account{{"ann", 17}, {"bob", 5}}, merged)

	assert.Equal(t, []account{}, UniqueByMerge(nil, func(a account) string { return a.Owner }, fn.First[account]()))
}

func TestToMapLaterKeysWin(t *testing.T) {
	m := ToMap([]account{{"ann", 10}, {"ann", 7}},
		func(a account) string { return a.Owner },
		func(a account) int { return a.Balance },
	)
	assert.Equal(t, map[string]int{"ann": 7}, m)
}
