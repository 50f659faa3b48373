package match

import "testing"

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]Status{
		"LIVE":        StatusLive,
		"ongoing":     StatusLive,
		"Completed":   StatusCompleted,
		"finished":    StatusCompleted,
		"postponed":   StatusPostponed,
		"canceled":    StatusCancelled,
		"upcoming":    StatusUpcoming,
		"":            StatusUpcoming,
		"tba":         StatusUpcoming,
		" in_progress ": StatusLive,
	}
	for input, expected := range cases {
		if got := NormalizeStatus(input); got != expected {
			t.Fatalf("NormalizeStatus(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestListingRankOrder(t *testing.T) {
	t.Parallel()

	ordered := []Status{StatusLive, StatusUpcoming, StatusCompleted, StatusPostponed, StatusCancelled}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].ListingRank() >= ordered[i].ListingRank() {
			t.Fatalf("%q must rank before %q", ordered[i-1], ordered[i])
		}
	}

	if Status("weird").ListingRank() <= StatusCancelled.ListingRank() {
		t.Fatal("unknown status must sort last")
	}
}
