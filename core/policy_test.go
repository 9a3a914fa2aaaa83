package core

import "testing"

func TestPolicyLevelFor(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		path string
		want AccessLevel
	}{
		{"/healthz", LevelPublic},
		{"/auth/login", LevelPublic},
		{"/auth/register", LevelPublic},
		{"/auth/me", LevelPublic},
		{"/api/songs", LevelAuthenticated},
		{"/api/songs/42", LevelAuthenticated},
		{"/healthz/extra", LevelAuthenticated},
		{"/", LevelAuthenticated},
		{"/unknown", LevelAuthenticated},
	}
	for _, tc := range cases {
		if got := p.LevelFor(tc.path); got != tc.want {
			t.Fatalf("LevelFor(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestPolicyFirstMatchWins(t *testing.T) {
	p := NewAccessPolicy(
		PolicyRule{Pattern: "/api/public/", Level: LevelPublic},
		PolicyRule{Pattern: "/api/", Level: LevelAuthenticated},
	)
	if got := p.LevelFor("/api/public/ping"); got != LevelPublic {
		t.Fatalf("earlier rule should win, got %v", got)
	}
	if got := p.LevelFor("/api/private"); got != LevelAuthenticated {
		t.Fatalf("later rule should apply, got %v", got)
	}
}
