package instructorRepo

import (
	"context"

	"driveline/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListActive returns active instructors sorted by name, which is the
// directory order used for all-slots merge numbering.
func (r *mongoInstructorRepo) ListActive(ctx context.Context) ([]models.Instructor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var instructors []models.Instructor
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

// GetByEmail returns one instructor by contact email.
func (r *mongoInstructorRepo) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&instructor); err != nil {
		return nil, err
	}
	return &instructor, nil
}
