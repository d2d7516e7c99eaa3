package assessments

import (
	"context"

	"tmdscreen-service/internal/app/contracts"
	"tmdscreen-service/internal/app/models"
	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
	}
}

func (repo *AssessmentMongoRepository) InsertAssessment(ctx context.Context, assessment *models.Assessment) error {
	_, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return exceptions.ErrMongoInsert(err)
	}
	return nil
}

func (repo *AssessmentMongoRepository) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := repo.Collection.FindOne(ctx, bson.M{"_id": assessmentID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFind(err)
	}
	return &assessment, nil
}
