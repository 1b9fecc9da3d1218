package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Bookings are created confirmed; payment state lives in
// Stripe, not here.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents a single hotel reservation owned by a user.
type Booking struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	HotelID    string    `json:"hotelId"`
	RoomType   string    `json:"roomType"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice int64     `json:"totalPrice"` // minor currency units
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
