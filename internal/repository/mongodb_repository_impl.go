package repository

import (
	"context"

	"github.com/ecommerce-catalog/catalog-service/internal/domain"
	"github.com/ecommerce-catalog/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) FindByID(ctx context.Context, id string) (product *domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	var result domain.Product
	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "FindByID").Msg("")
		return nil, err
	}

	return &result, nil
}

func (r *MongoDBProductRepositoryImpl) FindAll(ctx context.Context, page dto.PageRequest) (data []domain.Product, total int64, err error) {
	return r.find(ctx, bson.M{}, page, "FindAll")
}

func (r *MongoDBProductRepositoryImpl) FindByFilters(ctx context.Context, filter dto.ProductSearchFilter, page dto.PageRequest) (data []domain.Product, total int64, err error) {
	return r.find(ctx, BuildFilterQuery(filter), page, "FindByFilters")
}

// find runs the windowed query plus a count over the same selector without
// the window, so totals are independent of skip/limit.
func (r *MongoDBProductRepositoryImpl) find(ctx context.Context, query bson.M, page dto.PageRequest, component string) (data []domain.Product, total int64, err error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, query, BuildFindOptions(page))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	total, err = r.db.Collection(productCollection).CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return data, total, nil
}

func (r *MongoDBProductRepositoryImpl) FindDistinctCategories(ctx context.Context) (categories []string, err error) {
	return r.findDistinct(ctx, "category")
}

func (r *MongoDBProductRepositoryImpl) FindDistinctBrands(ctx context.Context) (brands []string, err error) {
	return r.findDistinct(ctx, "brand")
}

func (r *MongoDBProductRepositoryImpl) findDistinct(ctx context.Context, field string) (values []string, err error) {
	raw, err := r.db.Collection(productCollection).Distinct(ctx, field, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findDistinct").Str("field", field).Msg("")
		return
	}

	return DistinctValues(raw), nil
}

func (r *MongoDBProductRepositoryImpl) Save(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	opts := options.Replace().SetUpsert(true)

	_, err = r.db.Collection(productCollection).ReplaceOne(ctx, filter, data, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Save").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) SaveAll(ctx context.Context, data []domain.Product) (err error) {
	for _, product := range data {
		if err = r.Save(ctx, product); err != nil {
			return
		}
	}

	return
}

func (r *MongoDBProductRepositoryImpl) Count(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(productCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Count").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) DeleteAll(ctx context.Context) (err error) {
	_, err = r.db.Collection(productCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAll").Msg("")
		return
	}

	return
}
