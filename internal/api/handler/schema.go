package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. LoginURL is set when the caller has to sign in first.
type errorResponse struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"omitempty,max=80"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

// --- Catalog ---

type catalogEntryResponse struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PricePerHour int64  `json:"pricePerHour"`
	ImageURL     string `json:"imageUrl"`
}

type scheduleSlotResponse struct {
	PCID     int    `json:"pcId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// --- Bookings ---

// createBookingRequest carries raw user input. Completeness and time checks
// belong to the booking service so every caller gets the same messages.
type createBookingRequest struct {
	Date     string `json:"date"     example:"2024-06-01"`
	Time     string `json:"time"     example:"10:00"`
	Duration int    `json:"duration" example:"3"`
}

type bookingResponse struct {
	ID        string `json:"id,omitempty"`
	PCID      int    `json:"pcId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  int    `json:"duration"`
	TotalCost int64  `json:"totalCost"`
	UserEmail string `json:"userEmail"`
}

type transitionResponse struct {
	Path    string `json:"path"`
	DelayMs int64  `json:"delayMs"`
}

type confirmationResponse struct {
	AttemptID   string             `json:"attemptId"`
	Message     string             `json:"message"`
	Booking     bookingResponse    `json:"booking"`
	ConfirmedAt time.Time          `json:"confirmedAt"`
	Next        transitionResponse `json:"next"`
}

// --- History ---

type roomBookingResponse struct {
	ID     string `json:"id,omitempty"`
	RoomID string `json:"roomId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type foodOrderResponse struct {
	ID         string  `json:"id,omitempty"`
	Date       string  `json:"date"`
	TotalPrice float64 `json:"totalPrice"`
}

type historyResponse struct {
	Rooms        []roomBookingResponse `json:"rooms"`
	Workstations []bookingResponse     `json:"workstations"`
	FoodOrders   []foodOrderResponse   `json:"foodOrders"`
	// Partial is true when at least one source could not be read; the
	// affected lists are empty.
	Partial            bool     `json:"partial"`
	UnavailableSources []string `json:"unavailableSources,omitempty"`
}
