package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
)

func entry(name string, y int, m time.Month, d int) model.DateEntry {
	return model.DateEntry{VoterName: name, Date: date(y, m, d)}
}

func TestAggregate_CountsAndVoterOrder(t *testing.T) {
	// Mari picks the 10th and 11th, then Jaan picks the 10th.
	entries := []model.DateEntry{
		entry("Mari", 2024, 3, 10),
		entry("Mari", 2024, 3, 11),
		entry("Jaan", 2024, 3, 10),
	}

	results := Aggregate(entries)
	if len(results) != 2 {
		t.Fatalf("got %d dates, want 2", len(results))
	}

	byDate := make(map[string]model.DateOverlap)
	for _, r := range results {
		byDate[r.Date] = r
	}

	tenth := byDate["2024-03-10"]
	if tenth.Count != 2 {
		t.Errorf("2024-03-10 count = %d, want 2", tenth.Count)
	}
	// Voter order follows submission order, not alphabetical.
	if !reflect.DeepEqual(tenth.Voters, []string{"Mari", "Jaan"}) {
		t.Errorf("2024-03-10 voters = %v, want [Mari Jaan]", tenth.Voters)
	}

	eleventh := byDate["2024-03-11"]
	if eleventh.Count != 1 || !reflect.DeepEqual(eleventh.Voters, []string{"Mari"}) {
		t.Errorf("2024-03-11 = %+v, want count 1, voters [Mari]", eleventh)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	entries := []model.DateEntry{
		entry("Mari", 2024, 3, 10),
		entry("Jaan", 2024, 3, 10),
		entry("Jaan", 2024, 3, 12),
	}

	first := Aggregate(entries)
	for i := 0; i < 5; i++ {
		if again := Aggregate(entries); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	entries := []model.DateEntry{
		entry("Mari", 2024, 3, 10),
		entry("Jaan", 2024, 3, 11),
	}
	snapshot := make([]model.DateEntry, len(entries))
	copy(snapshot, entries)

	Aggregate(entries)

	if !reflect.DeepEqual(entries, snapshot) {
		t.Error("input entries were mutated")
	}
}

func TestAggregate_Empty(t *testing.T) {
	if results := Aggregate(nil); len(results) != 0 {
		t.Fatalf("got %d results for no entries, want 0", len(results))
	}
}

func TestMaxCount_FloorOne(t *testing.T) {
	if got := MaxCount(nil); got != 1 {
		t.Errorf("MaxCount(nil) = %d, want 1", got)
	}
	results := []model.DateOverlap{{Date: "2024-03-10", Count: 0}}
	if got := MaxCount(results); got != 1 {
		t.Errorf("MaxCount with zero counts = %d, want 1", got)
	}
}

func TestMaxCount_PicksLargest(t *testing.T) {
	results := []model.DateOverlap{
		{Date: "2024-03-10", Count: 2},
		{Date: "2024-03-11", Count: 5},
		{Date: "2024-03-12", Count: 5},
	}
	// Ties at the max need no tie-break; the value is all that matters.
	if got := MaxCount(results); got != 5 {
		t.Errorf("MaxCount = %d, want 5", got)
	}
}

func TestPartitionVoters_SplitsParticipants(t *testing.T) {
	results := Aggregate([]model.DateEntry{
		entry("Mari", 2024, 3, 10),
		entry("Mari", 2024, 3, 11),
		entry("Jaan", 2024, 3, 10),
		entry("Piret", 2024, 3, 12),
	})

	available, unavailable := PartitionVoters(results, "2024-03-10")
	if !reflect.DeepEqual(available, []string{"Mari", "Jaan"}) {
		t.Errorf("available = %v, want [Mari Jaan]", available)
	}
	if !reflect.DeepEqual(unavailable, []string{"Piret"}) {
		t.Errorf("unavailable = %v, want [Piret]", unavailable)
	}
}

func TestPartitionVoters_NeverSubmittedExcluded(t *testing.T) {
	// Only voters who submitted something appear in either list; a roster
	// member who never voted shows up nowhere.
	results := Aggregate([]model.DateEntry{
		entry("Mari", 2024, 3, 10),
	})

	available, unavailable := PartitionVoters(results, "2024-03-10")
	if len(available) != 1 || len(unavailable) != 0 {
		t.Errorf("got available=%v unavailable=%v, want [Mari] and []", available, unavailable)
	}
}

func TestPartitionVoters_DateNobodyPicked(t *testing.T) {
	results := Aggregate([]model.DateEntry{
		entry("Mari", 2024, 3, 10),
		entry("Jaan", 2024, 3, 11),
	})

	available, unavailable := PartitionVoters(results, "2024-03-20")
	if len(available) != 0 {
		t.Errorf("available = %v, want empty", available)
	}
	if !reflect.DeepEqual(unavailable, []string{"Mari", "Jaan"}) {
		t.Errorf("unavailable = %v, want [Mari Jaan]", unavailable)
	}
}
