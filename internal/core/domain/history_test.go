package domain

import "testing"

func TestFilterOwned_KeepsOnlyMatchingOwnerInOrder(t *testing.T) {
	rooms := []RoomBooking{
		{RoomID: "1", Owner: "a@x.com"},
		{RoomID: "2", Owner: "b@x.com"},
		{RoomID: "3", Owner: "a@x.com"},
		{RoomID: "4", Owner: "A@x.com"},
	}

	got := FilterOwned(rooms, OwnerKey("a@x.com"))

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].RoomID != "1" || got[1].RoomID != "3" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestFilterOwned_EmptyInputYieldsEmptySlice(t *testing.T) {
	got := FilterOwned([]FoodOrder(nil), OwnerKey("a@x.com"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestNewAggregatedHistory_NotPartial(t *testing.T) {
	h := NewAggregatedHistory()
	if h.Partial() {
		t.Error("fresh history must not be partial")
	}
	if h.Rooms == nil || h.Workstations == nil || h.FoodOrders == nil {
		t.Error("sequences must be non-nil")
	}
}
