package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/spacehub/booking-portal/internal/api/metrics"
	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

// HistoryService gathers a user's rooms, workstations and food orders.
type HistoryService struct {
	rooms        ports.RoomBookingStore
	workstations ports.WorkstationBookingStore
	food         ports.FoodOrderStore
	log          zerolog.Logger
}

func NewHistoryService(
	rooms ports.RoomBookingStore,
	workstations ports.WorkstationBookingStore,
	food ports.FoodOrderStore,
	log zerolog.Logger,
) *HistoryService {
	return &HistoryService{rooms: rooms, workstations: workstations, food: food, log: log}
}

// Load retrieves the three sources concurrently and keeps only the records
// owned by id. A failing source leaves its sequence empty and is reported in
// Failures; it never affects the other two.
func (s *HistoryService) Load(ctx context.Context, id domain.Identity) (domain.AggregatedHistory, error) {
	if !id.Resolved() {
		return domain.AggregatedHistory{}, domain.ErrIdentityRequired
	}

	start := time.Now()
	defer func() { metrics.HistoryLoadDuration.Observe(time.Since(start).Seconds()) }()

	key := id.Owner()
	h := domain.NewAggregatedHistory()

	var (
		rooms                  []domain.RoomBooking
		workstations           []domain.WorkstationBooking
		food                   []domain.FoodOrder
		roomsErr, wsErr, fdErr error
	)

	// each goroutine owns its own result slot and always returns nil, so one
	// failure never cancels the siblings; gctx ends once Load has joined them
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.rooms.ListRoomBookings(gctx)
		if err != nil {
			roomsErr = err
			return nil
		}
		rooms = domain.FilterOwned(all, key)
		return nil
	})
	g.Go(func() error {
		all, err := s.workstations.ListWorkstationBookings(gctx)
		if err != nil {
			wsErr = err
			return nil
		}
		workstations = domain.FilterOwned(all, key)
		return nil
	})
	g.Go(func() error {
		all, err := s.food.ListFoodOrders(gctx)
		if err != nil {
			fdErr = err
			return nil
		}
		food = domain.FilterOwned(all, key)
		return nil
	})
	g.Wait() // joins only; source errors are kept in the slots above

	if roomsErr != nil {
		s.fail(&h, domain.SourceRooms, roomsErr)
	} else {
		h.Rooms = rooms
	}
	if wsErr != nil {
		s.fail(&h, domain.SourceWorkstations, wsErr)
	} else {
		h.Workstations = workstations
	}
	if fdErr != nil {
		s.fail(&h, domain.SourceFoodOrders, fdErr)
	} else {
		h.FoodOrders = food
	}

	return h, nil
}

func (s *HistoryService) fail(h *domain.AggregatedHistory, src domain.HistorySource, err error) {
	h.Failures[src] = err
	metrics.HistorySourceFailuresTotal.WithLabelValues(string(src)).Inc()
	s.log.Warn().Err(err).Str("source", string(src)).Msg("history source unavailable")
}
