package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTrustBadgeJSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		Badge TrustBadge `json:"badge"`
	}

	for _, badge := range []TrustBadge{BadgeNewSeller, BadgeVerifiedOwner, BadgeTrustedSeller, BadgeTopSeller} {
		raw, err := json.Marshal(wrapper{Badge: badge})
		if err != nil {
			t.Fatalf("marshal %s: %v", badge, err)
		}
		if want := `{"badge":"` + badge.String() + `"}`; string(raw) != want {
			t.Fatalf("expected %s, got %s", want, raw)
		}

		var got wrapper
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got.Badge != badge {
			t.Fatalf("expected %s after decode, got %s", badge, got.Badge)
		}
	}
}

func TestTrustBadgeUnmarshalUnknown(t *testing.T) {
	t.Parallel()

	var got struct {
		Badge TrustBadge `json:"badge"`
	}
	err := json.Unmarshal([]byte(`{"badge":"GOLD_SELLER"}`), &got)
	if err == nil {
		t.Fatalf("expected error for unknown badge")
	}
	if !strings.Contains(err.Error(), `unknown trust badge "GOLD_SELLER"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTrustBadgeOutOfRange(t *testing.T) {
	t.Parallel()

	if got := TrustBadge(42).String(); got != "NEW_SELLER" {
		t.Fatalf("expected NEW_SELLER for out of range badge, got %s", got)
	}
	if BadgeTopSeller.Rank() != 3 {
		t.Fatalf("expected TOP_SELLER rank 3, got %d", BadgeTopSeller.Rank())
	}
}
