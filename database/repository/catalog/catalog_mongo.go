package catalogRepo

import (
	"context"
	"errors"
	"log"
	"time"

	"quotely/database"
	"quotely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by the services
// collection, seeding it with the default catalog when empty.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("quotely")
	repo := &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
	if err := repo.ensureSeeded(); err != nil {
		log.Fatalf("failed to seed service catalog: %v", err)
	}
	return repo
}

func (r *mongoCatalogRepo) ensureSeeded(defs ...models.ServiceDefinition) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := defs
	if len(seed) == 0 {
		seed = DefaultCatalog()
	}
	docs := make([]interface{}, 0, len(seed))
	for _, def := range seed {
		docs = append(docs, def)
	}
	_, err = r.coll.InsertMany(ctx, docs)
	return err
}

// GetService returns the service definition for the given id.
func (r *mongoCatalogRepo) GetService(ctx context.Context, id string) (models.ServiceDefinition, error) {
	var def models.ServiceDefinition
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&def)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ServiceDefinition{}, ErrNotFound
	}
	if err != nil {
		return models.ServiceDefinition{}, err
	}
	return def, nil
}

// ListServices returns all service definitions in catalog order.
func (r *mongoCatalogRepo) ListServices(ctx context.Context) ([]models.ServiceDefinition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []models.ServiceDefinition
	if err := cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}
