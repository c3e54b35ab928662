package names

// Count returns the number of occurrences of each distinct value.
func Count(values []string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// Duplicates returns the values of counts that occur more than once.
func Duplicates(counts map[string]int) map[string]int {
	dupes := make(map[string]int)
	for name, count := range counts {
		if count > 1 {
			dupes[name] = count
		}
	}
	return dupes
}

// Excess is the number of entries a reduction would drop for the given
// duplicate counts.
func Excess(dupes map[string]int) int {
	excess := 0
	for _, count := range dupes {
		excess += count - 1
	}
	return excess
}

// Unique keeps the first occurrence of every value and drops the rest,
// leaving survivors in their original relative order. The input is not
// modified.
func Unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}
