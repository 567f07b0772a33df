package services

import (
	"math/rand"

	"github.com/gosimple/slug"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// makeSlug derives a lowercase, hyphenated, URL-safe slug from a title
func makeSlug(title string) string {
	return slug.Make(title)
}

// randomSuffix returns a short random base36 string used to de-collide
// project titles whose slug is already taken
func randomSuffix() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// addRandomSuffix appends a random id to a title so its slug changes
func addRandomSuffix(title string) string {
	return title + " " + randomSuffix()
}
