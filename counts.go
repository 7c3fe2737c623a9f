package qpi

import (
	"errors"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Counts maps an observed classical bitstring to its occurrence frequency
// over the shot count. Bitstrings follow the device convention: classical
// bit n-1 is the leftmost character.
type Counts map[string]int

// Total returns the number of shots the table accounts for.
func (ct Counts) Total() int {
	total := 0
	for _, n := range ct {
		total += n
	}
	return total
}

// Mode returns the most frequent bitstring and its count. Ties break
// toward the lexicographically smallest key so the result is stable.
func (ct Counts) Mode() (string, int) {
	best := ""
	bestCount := -1
	for key, n := range ct {
		if n > bestCount || (n == bestCount && key < best) {
			best = key
			bestCount = n
		}
	}
	if bestCount < 0 {
		return "", 0
	}
	return best, bestCount
}

// ModeInt decodes the modal bitstring as a base-2 integer.
func (ct Counts) ModeInt() (int64, error) {
	mode, _ := ct.Mode()
	if mode == "" {
		return 0, errors.New("empty counts table has no mode")
	}
	return strconv.ParseInt(mode, 2, 64)
}

// Probabilities returns the normalized frequency per bitstring.
func (ct Counts) Probabilities() map[string]float64 {
	total := float64(ct.Total())
	probs := make(map[string]float64, len(ct))
	if total == 0 {
		return probs
	}
	for key, n := range ct {
		probs[key] = float64(n) / total
	}
	return probs
}

// Entropy returns the Shannon entropy (nats) of the outcome distribution.
// A sharply peaked table, the good case for phase readout, scores near 0.
func (ct Counts) Entropy() float64 {
	probs := ct.Probabilities()
	p := make([]float64, 0, len(probs))
	for _, v := range probs {
		p = append(p, v)
	}
	sort.Float64s(p)
	return stat.Entropy(p)
}
