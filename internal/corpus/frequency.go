package corpus

import "sort"

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable counts words and remembers the order in which each word
// was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add records n more occurrences of word.
func (t *FrequencyTable) Add(word string, n int) {
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word] += n
}

// Count returns how often word was seen.
func (t *FrequencyTable) Count(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total returns the number of word occurrences.
func (t *FrequencyTable) Total() int {
	if t == nil {
		return 0
	}
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Ranked returns every word by descending count. Words with equal counts
// keep their first-seen order.
func (t *FrequencyTable) Ranked() []WordCount {
	if t == nil {
		return nil
	}
	ranked := make([]WordCount, len(t.order))
	for i, w := range t.order {
		ranked[i] = WordCount{Word: w, Count: t.counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// AtLeast returns the ranked words seen at least min times.
func (t *FrequencyTable) AtLeast(min int) []WordCount {
	ranked := t.Ranked()
	n := sort.Search(len(ranked), func(i int) bool { return ranked[i].Count < min })
	return ranked[:n]
}
