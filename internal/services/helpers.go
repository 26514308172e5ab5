package services

import "strings"

// filterActive reports whether a string filter participates in the
// conjunction; empty and the "all" sentinel disable it.
func filterActive(v string) bool {
	return v != "" && v != "all"
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// sharedCount counts exact-match overlaps between two string sets.
func sharedCount(a, b []string) int {
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				n++
				break
			}
		}
	}
	return n
}

// anyOverlap reports whether the two sets share at least one element.
func anyOverlap(a, b []string) bool {
	return sharedCount(a, b) > 0
}

// crossMatchCount counts activities that substring-match any interest in
// either direction, case-insensitively.
func crossMatchCount(activities, interests []string) int {
	n := 0
	for _, activity := range activities {
		for _, interest := range interests {
			if containsFold(interest, activity) || containsFold(activity, interest) {
				n++
				break
			}
		}
	}
	return n
}
