package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// StoreAck is the datastore's answer to a create request.
type StoreAck struct {
	Acknowledged bool
	InsertedID   string
}

// WorkstationBookingStore persists and lists workstation bookings.
type WorkstationBookingStore interface {
	// CreateWorkstationBooking returns an error only for transport failures;
	// a store that answers but refuses the write reports Acknowledged=false.
	CreateWorkstationBooking(ctx context.Context, b domain.WorkstationBooking) (StoreAck, error)
	// ListWorkstationBookings returns the full collection in source order.
	ListWorkstationBookings(ctx context.Context) ([]domain.WorkstationBooking, error)
}

// RoomBookingStore lists room bookings from the rooms domain.
type RoomBookingStore interface {
	ListRoomBookings(ctx context.Context) ([]domain.RoomBooking, error)
}

// FoodOrderStore lists food orders from the food domain.
type FoodOrderStore interface {
	ListFoodOrders(ctx context.Context) ([]domain.FoodOrder, error)
}

// Datastore is the full surface of the external record store.
type Datastore interface {
	WorkstationBookingStore
	RoomBookingStore
	FoodOrderStore
	Ping(ctx context.Context) error
}
