package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"teamup/internal/domain/user"
)

const (
	statusTTL         = time.Hour
	onlineSetTTL      = time.Hour
	recommendationTTL = 1800 * time.Second
	allUsersTTL       = 300 * time.Second
	filterUsersTTL    = 120 * time.Second
)

const (
	allUsersKey       = "teamup:users:all"
	onlineSetKey      = "teamup:presence:online"
	filterUsersPrefix = "teamup:filterUsers:"
)

func availabilityKey(username string) string {
	return "teamup:availability:" + username
}

func recommendationKey(username string) string {
	return "teamup:recommendation:" + username
}

// filterUsersKey serializes the full parameter tuple in a fixed field
// order so every distinct filter/pagination combination gets its own
// slot. Pattern invalidation relies on the shared prefix.
func filterUsersKey(f user.ListFilter) string {
	avail := "-"
	if f.Availability != nil {
		avail = fmt.Sprintf("%t", *f.Availability)
	}
	minExp := "-"
	if f.MinExperience != nil {
		minExp = fmt.Sprintf("%d", *f.MinExperience)
	}

	return filterUsersPrefix + strings.Join([]string{
		"role=" + normalizeKeyPart(f.Role),
		"availability=" + avail,
		"skill=" + normalizeKeyPart(f.Skill),
		"interest=" + normalizeKeyPart(f.Interest),
		"min_experience=" + minExp,
		fmt.Sprintf("skip=%d", f.Skip),
		fmt.Sprintf("limit=%d", f.Limit),
	}, ":")
}

func normalizeKeyPart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	return strings.Join(strings.Fields(s), " ")
}

// sortedCopy keeps skill sets order-independent where a caller built
// them from map iteration.
func sortedCopy(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}
