package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gescar/dealership-system/internal/core/domain"
)

const salesCollection = "sales"

type SaleRepository struct {
	coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{coll: db.Collection(salesCollection)}
}

type saleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	VehicleID     string             `bson:"vehicle_id"`
	VehicleModel  string             `bson:"vehicle_model"`
	BuyerName     string             `bson:"buyer_name"`
	BuyerEmail    string             `bson:"buyer_email"`
	SalePrice     float64            `bson:"sale_price"`
	PaymentMethod string             `bson:"payment_method"`
	Date          time.Time          `bson:"date"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d saleDoc) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:            d.ID.Hex(),
		VehicleID:     d.VehicleID,
		VehicleModel:  d.VehicleModel,
		BuyerName:     d.BuyerName,
		BuyerEmail:    d.BuyerEmail,
		SalePrice:     d.SalePrice,
		PaymentMethod: d.PaymentMethod,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	doc := saleDoc{
		VehicleID:     s.VehicleID,
		VehicleModel:  s.VehicleModel,
		BuyerName:     s.BuyerName,
		BuyerEmail:    s.BuyerEmail,
		SalePrice:     s.SalePrice,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date,
		CreatedAt:     s.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	for cur.Next(ctx) {
		var doc saleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		sales = append(sales, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("sale cursor: %w", err)
	}
	return sales, nil
}

func (r *SaleRepository) TotalRevenue(ctx context.Context) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$sale_price"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("sales revenue: %w", err)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total float64 `bson:"total"`
			Count int64   `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, 0, fmt.Errorf("decode revenue: %w", err)
		}
		return row.Total, row.Count, nil
	}
	return 0, 0, cur.Err()
}
