package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const bookingsCollection = "bookings"

type bookingDoc struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"user_id"`
	HotelID    string    `bson:"hotel_id"`
	RoomType   string    `bson:"room_type"`
	CheckIn    time.Time `bson:"check_in"`
	CheckOut   time.Time `bson:"check_out"`
	Guests     int       `bson:"guests"`
	TotalPrice int64     `bson:"total_price"`
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d bookingDoc) toBooking() (*Booking, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed booking id %q: %w", d.ID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("malformed user id %q: %w", d.UserID, err)
	}
	return &Booking{
		ID:         id,
		UserID:     userID,
		HotelID:    d.HotelID,
		RoomType:   d.RoomType,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Guests:     d.Guests,
		TotalPrice: d.TotalPrice,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func fromBooking(b *Booking) bookingDoc {
	return bookingDoc{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		HotelID:    b.HotelID,
		RoomType:   b.RoomType,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

// MongoStorage implements Storage on a MongoDB bookings collection.
type MongoStorage struct {
	bookings *mongo.Collection
}

// NewMongoStorage creates a booking store on the given database handle.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{bookings: db.Collection(bookingsCollection)}
}

// EnsureIndexes creates the user_id index backing the list-by-user query.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create bookings index: %w", err)
	}
	return nil
}

func (s *MongoStorage) Insert(ctx context.Context, b *Booking) error {
	if _, err := s.bookings.InsertOne(ctx, fromBooking(b)); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var doc bookingDoc
	err := s.bookings.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return doc.toBooking()
}

func (s *MongoStorage) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	cursor, err := s.bookings.Find(ctx,
		bson.M{"user_id": userID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toBooking()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

var _ Storage = (*MongoStorage)(nil)
