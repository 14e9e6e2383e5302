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
)

const repairsCollection = "repairs"

type RepairRepository struct {
	coll *mongo.Collection
}

func NewRepairRepository(db *mongo.Database) *RepairRepository {
	return &RepairRepository{coll: db.Collection(repairsCollection)}
}

type repairDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	VehicleID     string             `bson:"vehicle_id"`
	VehicleModel  string             `bson:"vehicle_model"`
	Description   string             `bson:"description"`
	EstimatedCost float64            `bson:"estimated_cost"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d repairDoc) toDomain() *domain.Repair {
	return &domain.Repair{
		ID:            d.ID.Hex(),
		VehicleID:     d.VehicleID,
		VehicleModel:  d.VehicleModel,
		Description:   d.Description,
		EstimatedCost: d.EstimatedCost,
		Status:        domain.RepairStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *RepairRepository) Create(ctx context.Context, rep *domain.Repair) (*domain.Repair, error) {
	doc := repairDoc{
		VehicleID:     rep.VehicleID,
		VehicleModel:  rep.VehicleModel,
		Description:   rep.Description,
		EstimatedCost: rep.EstimatedCost,
		Status:        string(rep.Status),
		CreatedAt:     rep.CreatedAt,
		UpdatedAt:     rep.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert repair: %w", err)
	}

	created := *rep
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RepairRepository) FindByID(ctx context.Context, id string) (*domain.Repair, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRepairNotFound
	}

	var doc repairDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRepairNotFound
		}
		return nil, fmt.Errorf("find repair: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RepairRepository) List(ctx context.Context) ([]*domain.Repair, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer cur.Close(ctx)

	var repairs []*domain.Repair
	for cur.Next(ctx) {
		var doc repairDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode repair: %w", err)
		}
		repairs = append(repairs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("repair cursor: %w", err)
	}
	return repairs, nil
}

func (r *RepairRepository) UpdateStatus(ctx context.Context, id string, status domain.RepairStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRepairNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update repair status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRepairNotFound
	}
	return nil
}

func (r *RepairRepository) CostSummary(ctx context.Context) (float64, int64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"total": bson.M{"$sum": "$estimated_cost"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("repair summary: %w", err)
	}
	defer cur.Close(ctx)

	var total float64
	var inProgress, completed int64
	for cur.Next(ctx) {
		var row struct {
			ID    string  `bson:"_id"`
			Total float64 `bson:"total"`
			Count int64   `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, 0, 0, fmt.Errorf("decode repair summary: %w", err)
		}
		total += row.Total
		switch domain.RepairStatus(row.ID) {
		case domain.RepairInProgress:
			inProgress = row.Count
		case domain.RepairCompleted:
			completed = row.Count
		}
	}
	if err := cur.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("repair summary cursor: %w", err)
	}
	return total, inProgress, completed, nil
}
