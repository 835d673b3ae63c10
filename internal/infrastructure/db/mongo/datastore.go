package mongo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

// Collection names shared with the rooms and food services.
const (
	collectionRoomBookings = "bookings"
	collectionWorkstations = "pcbookinghistory"
	collectionFoodOrders   = "orderDetails"
)

// Datastore reads and writes the record collections directly.
type Datastore struct {
	client       *mongo.Client
	rooms        *mongo.Collection
	workstations *mongo.Collection
	food         *mongo.Collection
	log          zerolog.Logger
}

var _ ports.Datastore = (*Datastore)(nil)

func NewDatastore(db *mongo.Database, log zerolog.Logger) *Datastore {
	return &Datastore{
		client:       db.Client(),
		rooms:        db.Collection(collectionRoomBookings),
		workstations: db.Collection(collectionWorkstations),
		food:         db.Collection(collectionFoodOrders),
		log:          log,
	}
}

// workstationDoc truncates numbers written as doubles by other clients.
type workstationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PCID      int                `bson:"pcId,truncate"`
	Title     string             `bson:"title"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Duration  int                `bson:"duration,truncate"`
	TotalCost int64              `bson:"totalCost,truncate"`
	UserEmail string             `bson:"userEmail"`
}

func (d workstationDoc) toDomain() domain.WorkstationBooking {
	return domain.WorkstationBooking{
		ID:        d.ID.Hex(),
		PCID:      d.PCID,
		Title:     d.Title,
		Date:      d.Date,
		Time:      d.Time,
		Duration:  d.Duration,
		TotalCost: d.TotalCost,
		Owner:     domain.OwnerKey(d.UserEmail),
	}
}

// roomDoc tolerates roomId stored as either a string or a number.
type roomDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RoomID    bson.RawValue      `bson:"roomId"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Status    string             `bson:"status"`
	UserEmail string             `bson:"userEmail"`
}

func (d roomDoc) toDomain() domain.RoomBooking {
	return domain.RoomBooking{
		ID:     d.ID.Hex(),
		RoomID: rawToString(d.RoomID),
		Date:   d.Date,
		Time:   d.Time,
		Status: d.Status,
		Owner:  domain.OwnerKey(d.UserEmail),
	}
}

type foodDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Date       string             `bson:"date"`
	TotalPrice float64            `bson:"totalPrice"`
	Email      string             `bson:"email"`
}

func (d foodDoc) toDomain() domain.FoodOrder {
	return domain.FoodOrder{
		ID:         d.ID.Hex(),
		Date:       d.Date,
		TotalPrice: d.TotalPrice,
		Owner:      domain.OwnerKey(d.Email),
	}
}

// CreateWorkstationBooking inserts b. A write the server refuses is reported
// as an unacknowledged store answer rather than an error.
func (s *Datastore) CreateWorkstationBooking(ctx context.Context, b domain.WorkstationBooking) (ports.StoreAck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := workstationDoc{
		PCID:      b.PCID,
		Title:     b.Title,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.Duration,
		TotalCost: b.TotalCost,
		UserEmail: string(b.Owner),
	}

	res, err := s.workstations.InsertOne(ctx, doc)
	if err != nil {
		var we mongo.WriteException
		if errors.As(err, &we) {
			return ports.StoreAck{Acknowledged: false}, nil
		}
		return ports.StoreAck{}, fmt.Errorf("insert workstation booking: %w", err)
	}

	ack := ports.StoreAck{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid.Hex()
	}
	return ack, nil
}

func (s *Datastore) ListWorkstationBookings(ctx context.Context) ([]domain.WorkstationBooking, error) {
	docs, err := findAll[workstationDoc](ctx, s.workstations, s.log)
	if err != nil {
		return nil, fmt.Errorf("list workstation bookings: %w", err)
	}
	out := make([]domain.WorkstationBooking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Datastore) ListRoomBookings(ctx context.Context) ([]domain.RoomBooking, error) {
	docs, err := findAll[roomDoc](ctx, s.rooms, s.log)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	out := make([]domain.RoomBooking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Datastore) ListFoodOrders(ctx context.Context) ([]domain.FoodOrder, error) {
	docs, err := findAll[foodDoc](ctx, s.food, s.log)
	if err != nil {
		return nil, fmt.Errorf("list food orders: %w", err)
	}
	out := make([]domain.FoodOrder, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Datastore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// findAll returns every document of col in natural order.
func findAll[T any](ctx context.Context, col *mongo.Collection, log zerolog.Logger) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeEach[T](ctx, cur, log.With().Str("collection", col.Name()).Logger())
}

// decodeEach drains cur. A document that does not decode into T is logged and
// skipped; only cursor failures are returned.
func decodeEach[T any](ctx context.Context, cur *mongo.Cursor, log zerolog.Logger) ([]T, error) {
	defer cur.Close(ctx)

	docs := make([]T, 0)
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(&d); err != nil {
			log.Warn().Err(err).Str("id", rawID(cur.Current)).Msg("skipping undecodable document")
			continue
		}
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func rawID(doc bson.Raw) string {
	v, err := doc.LookupErr("_id")
	if err != nil {
		return ""
	}
	return rawToString(v)
}

func rawToString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeDateTime:
		return time.UnixMilli(v.DateTime()).UTC().Format(time.RFC3339)
	default:
		return ""
	}
}
