package huffpack

// FrequencyMap counts how often each symbol occurs in an input text.  The
// symbol alphabet is the set of Unicode code points of the text.
type FrequencyMap map[rune]int

// CountRunes returns the frequency map of text.  An empty text yields an
// empty map.
func CountRunes(text string) FrequencyMap {
	freq := make(FrequencyMap)
	for _, r := range text {
		freq[r]++
	}
	return freq
}
