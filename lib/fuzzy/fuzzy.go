// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package fuzzy ranks strings against a search pattern with fzf's
// matching algorithm.
package fuzzy

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var initOnce sync.Once

// Match scores text against pattern. Matching is case-insensitive and
// the pattern characters must appear in order. An empty pattern matches
// everything with score zero.
func Match(text, pattern string) (int, bool) {
	return match(text, pattern, nil)
}

func match(text, pattern string, slab *util.Slab) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	initOnce.Do(func() { algo.Init("default") })

	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, []rune(strings.ToLower(pattern)), false, slab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}

// Filter returns the items whose key matches pattern, best match first.
// Items with equal scores keep their original order.
func Filter[T any](items []T, pattern string, key func(T) string) []T {
	if pattern == "" {
		return items
	}

	type scored struct {
		item  T
		score int
	}
	slab := util.MakeSlab(100*1024, 2048)
	var matches []scored
	for _, item := range items {
		if score, ok := match(key(item), pattern, slab); ok {
			matches = append(matches, scored{item: item, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]T, len(matches))
	for index, match := range matches {
		result[index] = match.item
	}
	return result
}
