package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.NotificationProfile, error) {
	var profile models.NotificationProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &profile, nil
}

func (r *MongoUserRepo) RegisterToken(ctx context.Context, id string, reg models.TokenRegistration) error {
	set := bson.M{"updatedAt": time.Now()}
	if reg.Email != "" {
		set["email"] = reg.Email
	}
	if reg.DeviceType != "" {
		set["deviceType"] = reg.DeviceType
	}
	if reg.Platform != "" {
		set["platform"] = reg.Platform
	}

	update := bson.M{
		"$addToSet": bson.M{"notificationTokens": reg.Token},
		"$set":      set,
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update, opts); err != nil {
		return fmt.Errorf("failed to register token for user %s: %w", id, err)
	}
	return nil
}

func (r *MongoUserRepo) RemoveTokens(ctx context.Context, id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	update := bson.M{
		"$pull": bson.M{"notificationTokens": bson.M{"$in": tokens}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to pull tokens for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
