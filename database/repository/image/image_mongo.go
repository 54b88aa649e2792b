package imageRepo

import (
	"context"
	"fmt"
	"time"

	"servigo/database"
	"servigo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceImageRepo implements ServiceImageRepository using MongoDB.
type MongoServiceImageRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceImageRepo creates a new instance of ServiceImageRepository using MongoDB.
func NewMongoServiceImageRepo() ServiceImageRepository {
	coll := database.Collection("service_images")
	return &MongoServiceImageRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceImageRepo) GetPrimaryByListing(listingID string) (*models.ServiceImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"service_id": listingID, "is_primary": true}
	var image models.ServiceImage
	if err := r.coll.FindOne(ctx, filter).Decode(&image); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch primary image for listing %s: %w", listingID, err)
	}
	return &image, nil
}

func (r *MongoServiceImageRepo) GetByListing(listingID string) ([]models.ServiceImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"service_id": listingID})
	if err != nil {
		return nil, fmt.Errorf("failed to find images for listing %s: %w", listingID, err)
	}
	defer cursor.Close(ctx)

	var images []models.ServiceImage
	for cursor.Next(ctx) {
		var img models.ServiceImage
		if err := cursor.Decode(&img); err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

func (r *MongoServiceImageRepo) Create(image *models.ServiceImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if image.IsPrimary {
		filter := bson.M{"service_id": image.ServiceID, "is_primary": true}
		if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_primary": false}}); err != nil {
			return fmt.Errorf("failed to clear primary flag for listing %s: %w", image.ServiceID, err)
		}
	}

	if _, err := r.coll.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}
