package prescriptionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careinsight/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPrescriptionRepo implements PrescriptionRepository using MongoDB.
type MongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo creates a repository over the prescriptions collection.
func NewMongoPrescriptionRepo(db *mongo.Database) PrescriptionRepository {
	repo := &MongoPrescriptionRepo{coll: db.Collection("prescriptions")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create prescription indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPrescriptionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "startDate", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPrescriptionRepo) Create(ctx context.Context, p *models.Prescription) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *MongoPrescriptionRepo) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	var p models.Prescription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch prescription %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPrescriptionRepo) ListByUser(ctx context.Context, userID string) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"userId": userID}, opts)
}

func (r *MongoPrescriptionRepo) ListStartedBy(ctx context.Context, now time.Time) ([]models.Prescription, error) {
	filter := bson.M{
		"startDate":     bson.M{"$lt": models.EndOfDay(now)},
		"dosageTimes.0": bson.M{"$exists": true},
	}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoPrescriptionRepo) Delete(ctx context.Context, id, userID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete prescription %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPrescriptionRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Prescription, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Prescription
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode prescriptions: %w", err)
	}
	return out, nil
}
