package handler

import (
	"sort"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role}
}

func toCatalogEntryResponse(e domain.CatalogEntry) catalogEntryResponse {
	return catalogEntryResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		PricePerHour: e.PricePerHour,
		ImageURL:     e.ImageURL,
	}
}

func toScheduleResponse(slots []ports.ScheduleSlot) []scheduleSlotResponse {
	out := make([]scheduleSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, scheduleSlotResponse{PCID: s.PCID, Date: s.Date, Time: s.Time, Duration: s.Duration})
	}
	return out
}

func toBookingResponse(b domain.WorkstationBooking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		PCID:      b.PCID,
		Title:     b.Title,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.Duration,
		TotalCost: b.TotalCost,
		UserEmail: string(b.Owner),
	}
}

func toBookingsResponse(list []domain.WorkstationBooking) []bookingResponse {
	out := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	return out
}

func toConfirmationResponse(c *domain.Confirmation) confirmationResponse {
	return confirmationResponse{
		AttemptID:   c.AttemptID,
		Message:     c.Message,
		Booking:     toBookingResponse(c.Booking),
		ConfirmedAt: c.ConfirmedAt,
		Next: transitionResponse{
			Path:    c.Next.Path,
			DelayMs: c.Next.MinDisplay.Milliseconds(),
		},
	}
}

// toHistoryResponse drops failure causes; only the names of unavailable
// sources reach the client.
func toHistoryResponse(h domain.AggregatedHistory) historyResponse {
	resp := historyResponse{
		Rooms:        make([]roomBookingResponse, 0, len(h.Rooms)),
		Workstations: toBookingsResponse(h.Workstations),
		FoodOrders:   make([]foodOrderResponse, 0, len(h.FoodOrders)),
		Partial:      h.Partial(),
	}
	for _, r := range h.Rooms {
		resp.Rooms = append(resp.Rooms, roomBookingResponse{ID: r.ID, RoomID: r.RoomID, Date: r.Date, Time: r.Time, Status: r.Status})
	}
	for _, f := range h.FoodOrders {
		resp.FoodOrders = append(resp.FoodOrders, foodOrderResponse{ID: f.ID, Date: f.Date, TotalPrice: f.TotalPrice})
	}
	for src := range h.Failures {
		resp.UnavailableSources = append(resp.UnavailableSources, string(src))
	}
	sort.Strings(resp.UnavailableSources)
	return resp
}
