package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// flexString decodes a JSON string or number into its textual form.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt decodes a JSON number, fractional or not, or a numeric string.
// Fractions are truncated toward zero. It encodes as a plain integer.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	if n, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*f = flexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("flexInt: %q is not a number", b)
	}
	if math.IsNaN(v) || v >= math.MaxInt64 || v <= math.MinInt64 {
		return fmt.Errorf("flexInt: %q out of range", b)
	}
	*f = flexInt(math.Trunc(v))
	return nil
}

type workstationRecord struct {
	ID        string  `json:"_id,omitempty"`
	PCID      flexInt `json:"pcId"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Duration  flexInt `json:"duration"`
	TotalCost flexInt `json:"totalCost"`
	UserEmail string  `json:"userEmail"`
}

func workstationRecordFrom(b domain.WorkstationBooking) workstationRecord {
	return workstationRecord{
		PCID:      flexInt(b.PCID),
		Title:     b.Title,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  flexInt(b.Duration),
		TotalCost: flexInt(b.TotalCost),
		UserEmail: string(b.Owner),
	}
}

func (r workstationRecord) toDomain() domain.WorkstationBooking {
	return domain.WorkstationBooking{
		ID:        r.ID,
		PCID:      int(r.PCID),
		Title:     r.Title,
		Date:      r.Date,
		Time:      r.Time,
		Duration:  int(r.Duration),
		TotalCost: int64(r.TotalCost),
		Owner:     domain.OwnerKey(r.UserEmail),
	}
}

type roomRecord struct {
	ID        string     `json:"_id"`
	RoomID    flexString `json:"roomId"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Status    string     `json:"status"`
	UserEmail string     `json:"userEmail"`
}

func (r roomRecord) toDomain() domain.RoomBooking {
	return domain.RoomBooking{
		ID:     r.ID,
		RoomID: string(r.RoomID),
		Date:   r.Date,
		Time:   r.Time,
		Status: r.Status,
		Owner:  domain.OwnerKey(r.UserEmail),
	}
}

// foodRecord names its owner field "email", unlike the booking collections.
type foodRecord struct {
	ID         string  `json:"_id"`
	Date       string  `json:"date"`
	TotalPrice float64 `json:"totalPrice"`
	Email      string  `json:"email"`
}

func (r foodRecord) toDomain() domain.FoodOrder {
	return domain.FoodOrder{
		ID:         r.ID,
		Date:       r.Date,
		TotalPrice: r.TotalPrice,
		Owner:      domain.OwnerKey(r.Email),
	}
}

type createResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}
