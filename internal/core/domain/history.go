package domain

// Owned is implemented by every record that can be scoped to an identity.
type Owned interface {
	OwnerKey() OwnerKey
}

// RoomBooking is a meeting room booking from the sibling rooms domain.
type RoomBooking struct {
	ID     string   `json:"id,omitempty"`
	RoomID string   `json:"roomId"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Status string   `json:"status"`
	Owner  OwnerKey `json:"userEmail"`
}

// OwnerKey implements Owned.
func (r RoomBooking) OwnerKey() OwnerKey { return r.Owner }

// FoodOrder is an order from the sibling food domain.
type FoodOrder struct {
	ID         string   `json:"id,omitempty"`
	Date       string   `json:"date"`
	TotalPrice float64  `json:"totalPrice"`
	Owner      OwnerKey `json:"email"`
}

// OwnerKey implements Owned.
func (f FoodOrder) OwnerKey() OwnerKey { return f.Owner }

// HistorySource names one of the independently retrieved collections.
type HistorySource string

const (
	SourceRooms        HistorySource = "rooms"
	SourceWorkstations HistorySource = "workstations"
	SourceFoodOrders   HistorySource = "food_orders"
)

// AggregatedHistory is the identity-scoped view across all three sources.
// A source that failed contributes an empty slice and an entry in Failures.
type AggregatedHistory struct {
	Rooms        []RoomBooking
	Workstations []WorkstationBooking
	FoodOrders   []FoodOrder
	Failures     map[HistorySource]error
}

// NewAggregatedHistory returns a history with empty, non-nil sequences.
func NewAggregatedHistory() AggregatedHistory {
	return AggregatedHistory{
		Rooms:        []RoomBooking{},
		Workstations: []WorkstationBooking{},
		FoodOrders:   []FoodOrder{},
		Failures:     map[HistorySource]error{},
	}
}

// Partial reports whether at least one source failed.
func (h AggregatedHistory) Partial() bool {
	return len(h.Failures) > 0
}

// FilterOwned keeps the records whose owner matches key exactly, preserving
// their relative order.
func FilterOwned[T Owned](records []T, key OwnerKey) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.OwnerKey() == key {
			out = append(out, r)
		}
	}
	return out
}
