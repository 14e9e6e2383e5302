package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

const vehiclesCollection = "vehicles"

type VehicleRepository struct {
	coll *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{coll: db.Collection(vehiclesCollection)}
}

type statusEntryDoc struct {
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
	Source    string    `bson:"source,omitempty"`
}

type vehicleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Model         string             `bson:"model"`
	Brand         string             `bson:"brand"`
	Year          int                `bson:"year"`
	Price         float64            `bson:"price"`
	Status        string             `bson:"status"`
	Color         string             `bson:"color,omitempty"`
	Mileage       int                `bson:"mileage,omitempty"`
	Description   string             `bson:"description,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
	StatusHistory []statusEntryDoc   `bson:"status_history"`
}

func toVehicleDoc(v *domain.Vehicle) vehicleDoc {
	history := make([]statusEntryDoc, len(v.StatusHistory))
	for i, e := range v.StatusHistory {
		history[i] = statusEntryDoc{Status: string(e.Status), Timestamp: e.Timestamp, Source: e.Source}
	}
	return vehicleDoc{
		Model:         v.Model,
		Brand:         v.Brand,
		Year:          v.Year,
		Price:         v.Price,
		Status:        string(v.Status),
		Color:         v.Color,
		Mileage:       v.Mileage,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		StatusHistory: history,
	}
}

func (d vehicleDoc) toDomain() *domain.Vehicle {
	history := make([]domain.StatusHistoryEntry, len(d.StatusHistory))
	for i, e := range d.StatusHistory {
		history[i] = domain.StatusHistoryEntry{
			Status:    domain.VehicleStatus(e.Status),
			Timestamp: e.Timestamp,
			Source:    e.Source,
		}
	}
	return &domain.Vehicle{
		ID:            d.ID.Hex(),
		Model:         d.Model,
		Brand:         d.Brand,
		Year:          d.Year,
		Price:         d.Price,
		Status:        domain.VehicleStatus(d.Status),
		Color:         d.Color,
		Mileage:       d.Mileage,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		StatusHistory: history,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	res, err := r.coll.InsertOne(ctx, toVehicleDoc(v))
	if err != nil {
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}

	created := *v
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVehicleNotFound
	}

	var doc vehicleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VehicleRepository) List(ctx context.Context, filter ports.ListVehiclesFilter) ([]*domain.Vehicle, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}
	if filter.Brand != "" {
		query["brand"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + filter.Brand + "$", Options: "i"}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}
	defer cur.Close(ctx)

	var vehicles []*domain.Vehicle
	for cur.Next(ctx) {
		var doc vehicleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode vehicle: %w", err)
		}
		vehicles = append(vehicles, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("vehicle cursor: %w", err)
	}
	return vehicles, total, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	oid, err := primitive.ObjectIDFromHex(v.ID)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	update := bson.M{"$set": bson.M{
		"model":       v.Model,
		"brand":       v.Brand,
		"year":        v.Year,
		"price":       v.Price,
		"color":       v.Color,
		"mileage":     v.Mileage,
		"description": v.Description,
		"updated_at":  v.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// UpdateStatus sets the status and appends the history entry in a
// single write.
func (r *VehicleRepository) UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus, entry domain.StatusHistoryEntry) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": entry.Timestamp,
		},
		"$push": bson.M{
			"status_history": statusEntryDoc{
				Status:    string(entry.Status),
				Timestamp: entry.Timestamp,
				Source:    entry.Source,
			},
		},
	}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[domain.VehicleStatus]int64)
	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode status count: %w", err)
		}
		counts[domain.VehicleStatus(row.ID)] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("status count cursor: %w", err)
	}
	return counts, nil
}
