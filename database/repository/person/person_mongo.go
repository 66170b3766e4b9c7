package personRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/config"
	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPersonRepo implements PersonRepository using MongoDB.
type MongoPersonRepo struct {
	coll *mongo.Collection
}

// NewMongoPersonRepo constructs a new instance of MongoPersonRepo.
func NewMongoPersonRepo() PersonRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoPersonRepo{coll: db.Collection("people")}
}

func (repo *MongoPersonRepo) Exists(personID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"id": personID})
	if err != nil {
		return false, fmt.Errorf("error checking person %s: %w", personID, err)
	}
	return count > 0, nil
}

func (repo *MongoPersonRepo) GetByID(personID string) (*models.Person, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var person models.Person
	if err := repo.coll.FindOne(ctx, bson.M{"id": personID}).Decode(&person); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching person with id %s: %w", personID, err)
	}
	return &person, nil
}

func (repo *MongoPersonRepo) GetAll() ([]models.Person, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing people: %w", err)
	}
	defer cursor.Close(ctx)

	var people []models.Person
	if err := cursor.All(ctx, &people); err != nil {
		return nil, fmt.Errorf("error decoding people: %w", err)
	}
	return people, nil
}

func (repo *MongoPersonRepo) Create(person *models.Person) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, person); err != nil {
		return fmt.Errorf("error creating person: %w", err)
	}
	return nil
}

func (repo *MongoPersonRepo) Update(person *models.Person) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":  person.Name,
		"email": person.Email,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": person.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating person %s: %w", person.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoPersonRepo) Delete(personID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": personID})
	if err != nil {
		return fmt.Errorf("error deleting person %s: %w", personID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
