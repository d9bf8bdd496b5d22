package instructorRepo

import (
	"context"

	"driveline/config"
	"driveline/database"
	"driveline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InstructorRepository is the read-only instructor directory.
type InstructorRepository interface {
	// ListActive returns active instructors in directory order.
	ListActive(ctx context.Context) ([]models.Instructor, error)
	// GetByEmail returns one instructor, active or not.
	GetByEmail(ctx context.Context, email string) (*models.Instructor, error)
}

type mongoInstructorRepo struct {
	coll *mongo.Collection
}

// NewMongoInstructorRepo returns an InstructorRepository backed by MongoDB.
func NewMongoInstructorRepo() InstructorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoInstructorRepo{
		coll: db.Collection("instructors"),
	}
}
