package usecase

import (
	"strings"
	"testing"

	"teamup/internal/domain/user"
)

func TestFilterUsersKey_Deterministic(t *testing.T) {
	avail := true
	minExp := 3
	f := user.ListFilter{
		Role:          "engineer",
		Availability:  &avail,
		Skill:         "go",
		Interest:      "chess",
		MinExperience: &minExp,
		Skip:          10,
		Limit:         50,
	}
	if filterUsersKey(f) != filterUsersKey(f) {
		t.Fatalf("key must be deterministic")
	}
	want := "teamup:filterUsers:role=engineer:availability=true:skill=go:interest=chess:min_experience=3:skip=10:limit=50"
	if got := filterUsersKey(f); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFilterUsersKey_DistinctTuplesDistinctKeys(t *testing.T) {
	base := user.ListFilter{Role: "engineer", Limit: 100}
	variants := []user.ListFilter{
		{Role: "designer", Limit: 100},
		{Role: "engineer", Limit: 50},
		{Role: "engineer", Limit: 100, Skip: 100},
		{Role: "engineer", Limit: 100, Skill: "go"},
	}
	seen := map[string]bool{filterUsersKey(base): true}
	for _, v := range variants {
		k := filterUsersKey(v)
		if seen[k] {
			t.Fatalf("filter %+v collides with an earlier key %q", v, k)
		}
		seen[k] = true
	}
}

func TestFilterUsersKey_SharesInvalidationPrefix(t *testing.T) {
	k := filterUsersKey(user.ListFilter{Limit: 100})
	if !strings.HasPrefix(k, filterUsersPrefix) {
		t.Fatalf("key %q must carry the filterUsers prefix", k)
	}
}

func TestFilterUsersKey_UnsetFieldsMarked(t *testing.T) {
	k := filterUsersKey(user.ListFilter{Limit: 100})
	if !strings.Contains(k, "role=-") || !strings.Contains(k, "availability=-") {
		t.Fatalf("unset fields must serialize to a fixed placeholder, got %q", k)
	}
}
