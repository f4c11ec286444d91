package logscan

import (
	"sort"
)

// Entry is a key from a frequency table together with its count.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Freq is a frequency table: it counts occurrences of string keys, and
// remembers the order in which each key was first seen. That order is used
// to break ties wherever entries are ranked.
//
// The zero value is an empty table ready to use.
type Freq struct {
	keys   []string
	counts map[string]int
}

// NewFreq returns an empty frequency table.
func NewFreq() *Freq {
	return &Freq{counts: map[string]int{}}
}

// Add increments the count for key by one.
func (f *Freq) Add(key string) {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	if _, ok := f.counts[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.counts[key]++
}

// Count returns the count for key, or zero if it has never been seen.
func (f *Freq) Count(key string) int {
	if f == nil {
		return 0
	}
	return f.counts[key]
}

// Len returns the number of distinct keys.
func (f *Freq) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Total returns the sum of all counts.
func (f *Freq) Total() int {
	total := 0
	for _, e := range f.Entries() {
		total += e.Count
	}
	return total
}

// Entries returns every key with its count, in first-seen order.
func (f *Freq) Entries() []Entry {
	if f == nil {
		return nil
	}
	entries := make([]Entry, 0, len(f.keys))
	for _, k := range f.keys {
		entries = append(entries, Entry{Key: k, Count: f.counts[k]})
	}
	return entries
}

// Ranked returns every key with its count, most frequent first. Keys with
// equal counts stay in first-seen order.
func (f *Freq) Ranked() []Entry {
	entries := f.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the most frequent key, preferring the first-seen key on a tie.
// It returns false if the table is empty.
func (f *Freq) Top() (Entry, bool) {
	var top Entry
	found := false
	for _, e := range f.Entries() {
		if !found || e.Count > top.Count {
			top, found = e, true
		}
	}
	return top, found
}

// Above returns, in first-seen order, the entries whose count is strictly
// greater than threshold.
func (f *Freq) Above(threshold int) []Entry {
	var above []Entry
	for _, e := range f.Entries() {
		if e.Count > threshold {
			above = append(above, e)
		}
	}
	return above
}
