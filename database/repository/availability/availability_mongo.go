package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/config"
	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository against the people
// collection; availability lives embedded in the person document.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAvailabilityRepo{coll: db.Collection("people")}
}

func (repo *MongoAvailabilityRepo) Get(personID string) (models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		Availability models.WeeklyAvailability `bson:"availability"`
	}
	opts := options.FindOne().SetProjection(bson.M{"availability": 1})
	if err := repo.coll.FindOne(ctx, bson.M{"id": personID}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.WeeklyAvailability{}, ErrNotFound
		}
		return models.WeeklyAvailability{}, fmt.Errorf("error fetching availability for person %s: %w", personID, err)
	}
	return doc.Availability, nil
}

func (repo *MongoAvailabilityRepo) Replace(personID string, wa models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"availability": wa}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": personID}, update)
	if err != nil {
		return fmt.Errorf("error replacing availability for person %s: %w", personID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
