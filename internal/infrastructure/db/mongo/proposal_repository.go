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

const proposalsCollection = "proposals"

type ProposalRepository struct {
	coll *mongo.Collection
}

func NewProposalRepository(db *mongo.Database) *ProposalRepository {
	return &ProposalRepository{coll: db.Collection(proposalsCollection)}
}

type proposalDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ClientID     string             `bson:"client_id"`
	VehicleID    string             `bson:"vehicle_id"`
	VehicleLabel string             `bson:"vehicle_label"`
	Value        float64            `bson:"value"`
	Status       string             `bson:"status"`
	Date         time.Time          `bson:"date"`
}

func (d proposalDoc) toDomain() *domain.Proposal {
	return &domain.Proposal{
		ID:           d.ID.Hex(),
		ClientID:     d.ClientID,
		VehicleID:    d.VehicleID,
		VehicleLabel: d.VehicleLabel,
		Value:        d.Value,
		Status:       domain.ProposalStatus(d.Status),
		Date:         d.Date,
	}
}

func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	doc := proposalDoc{
		ClientID:     p.ClientID,
		VehicleID:    p.VehicleID,
		VehicleLabel: p.VehicleLabel,
		Value:        p.Value,
		Status:       string(p.Status),
		Date:         p.Date,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id string) (*domain.Proposal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}

	var doc proposalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProposalRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Proposal, error) {
	query := bson.M{}
	if clientID != "" {
		query["client_id"] = clientID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer cur.Close(ctx)

	var proposals []*domain.Proposal
	for cur.Next(ctx) {
		var doc proposalDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		proposals = append(proposals, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("proposal cursor: %w", err)
	}
	return proposals, nil
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, id string, status domain.ProposalStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProposalNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}
