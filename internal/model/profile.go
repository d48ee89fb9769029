package model

import "strings"

// Profile is the locally edited profile card: a free-text bio plus
// the interest tag list.
type Profile struct {
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

// AddInterest appends a trimmed tag unless it is blank or already
// present (exact, case-sensitive match). Insertion order is kept.
func AddInterest(interests []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return interests
	}
	for _, t := range interests {
		if t == tag {
			return interests
		}
	}
	return append(interests, tag)
}

// RemoveInterest drops the first exact match of tag.
func RemoveInterest(interests []string, tag string) []string {
	for i, t := range interests {
		if t == tag {
			return append(interests[:i], interests[i+1:]...)
		}
	}
	return interests
}
