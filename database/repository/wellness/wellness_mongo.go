package wellnessRepo

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

type MongoWellnessRepo struct {
	coll *mongo.Collection
}

func NewMongoWellnessRepo(db *mongo.Database) WellnessRepository {
	repo := &MongoWellnessRepo{coll: db.Collection("wellness_profiles")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoWellnessRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoWellnessRepo) Get(ctx context.Context, userID string) (*models.WellnessProfile, error) {
	var profile models.WellnessProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch wellness profile for %s: %w", userID, err)
	}
	return &profile, nil
}

// Upsert replaces the user's profile wholesale.
func (r *MongoWellnessRepo) Upsert(ctx context.Context, profile models.WellnessProfile) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"userId": profile.UserID},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save wellness profile for %s: %w", profile.UserID, err)
	}
	return nil
}
