package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const plantsCollection = "plants"

type plantDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Price      float64            `bson:"price"`
	Categories []string           `bson:"categories"`
	InStock    bool               `bson:"inStock"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d plantDocument) toDomain() domain.Plant {
	categories := d.Categories
	if categories == nil {
		categories = []string{}
	}
	return domain.Plant{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Price:      d.Price,
		Categories: categories,
		InStock:    d.InStock,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func newPlantDocument(p domain.Plant, now time.Time) plantDocument {
	return plantDocument{
		Name:       p.Name,
		Price:      p.Price,
		Categories: p.Categories,
		InStock:    p.InStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type mongoPlantRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoPlantRepository returns a store backed by the "plants" collection and
// makes sure its indexes exist.
func NewMongoPlantRepository(ctx context.Context, db *mongo.Database) (PlantStore, error) {
	r := &mongoPlantRepository{coll: db.Collection(plantsCollection), now: time.Now}
	if err := r.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *mongoPlantRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("name_unique")},
		{Keys: bson.D{{Key: "categories", Value: 1}}, Options: options.Index().SetName("categories")},
		{Keys: bson.D{{Key: "inStock", Value: 1}}, Options: options.Index().SetName("in_stock")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create plant indexes: %w", err)
	}
	return nil
}

// buildMongoFilter quotes the search term so regex metacharacters match literally.
func buildMongoFilter(filter domain.PlantFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	if filter.Category != "" {
		query["categories"] = filter.Category
	}
	return query
}

func (r *mongoPlantRepository) ListPlants(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, buildMongoFilter(filter), opts)
	if err != nil {
		logger.Error("ListPlants: find failed", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []plantDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.Error("ListPlants: decode failed", err)
		return nil, err
	}
	plants := make([]domain.Plant, 0, len(docs))
	for _, d := range docs {
		plants = append(plants, d.toDomain())
	}
	return plants, nil
}

func (r *mongoPlantRepository) ListCategories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "categories", bson.M{})
	if err != nil {
		logger.Error("ListCategories: distinct failed", err)
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *mongoPlantRepository) GetPlantByID(ctx context.Context, id string) (*domain.Plant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPlantID
	}

	var doc plantDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlantNotFound
		}
		logger.Error("GetPlantByID: find failed", err)
		return nil, err
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *mongoPlantRepository) CreatePlant(ctx context.Context, plant *domain.Plant) error {
	doc := newPlantDocument(*plant, r.now().UTC())
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.Warn("CreatePlant: duplicate name %q", plant.Name)
			return ErrPlantConflict
		}
		logger.Error("CreatePlant: insert failed", err)
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	plant.ID = oid.Hex()
	plant.CreatedAt = doc.CreatedAt
	plant.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *mongoPlantRepository) ReplaceAll(ctx context.Context, plants []domain.Plant) (int, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear plants: %w", err)
	}
	if len(plants) == 0 {
		return 0, nil
	}
	now := r.now().UTC()
	docs := make([]interface{}, 0, len(plants))
	for _, p := range plants {
		docs = append(docs, newPlantDocument(p, now))
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("seed plants: %w", ErrPlantConflict)
		}
		return 0, fmt.Errorf("failed to insert seed plants: %w", err)
	}
	return len(res.InsertedIDs), nil
}
