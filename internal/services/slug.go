package services

import (
	"fmt"
	"regexp"
	"strings"
)

const maxSlugLength = 50

var slugDisallowedRunes = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugWhitespaceRuns = regexp.MustCompile(`\s+`)
var slugHyphenRuns = regexp.MustCompile(`-+`)

// GenerateSlug derives a deterministic URL slug from an organization name:
// lowercase, strip everything outside [a-z0-9\s-], collapse whitespace
// runs to single hyphens, collapse repeated hyphens, truncate to 50.
func GenerateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugDisallowedRunes.ReplaceAllString(slug, "")
	slug = slugWhitespaceRuns.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}

// IsUsableSlug rejects the degenerate outputs an all-punctuation or
// all-whitespace name produces ("" or a bare run of hyphens).
func IsUsableSlug(slug string) bool {
	return strings.Trim(slug, "-") != ""
}

type SlugExistenceChecker interface {
	SlugExists(slug string) (bool, error)
}

// UniqueSlug appends an incrementing numeric suffix until the store
// reports no collision.
func UniqueSlug(store SlugExistenceChecker, name string) (string, error) {
	base := GenerateSlug(name)
	candidate := base
	for suffix := 2; ; suffix++ {
		exists, err := store.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}
