package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-front/models"
)

// BlogRepository는 backend가 포스트를 저장하는 컬렉션을 읽기 전용으로 조회한다.
type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database, collection string) *BlogRepository {
	if collection == "" {
		collection = "blogs"
	}
	return &BlogRepository{col: db.Collection(collection)}
}

// ListAll은 컬렉션 전체를 canonical Post로 변환해 반환한다. 순서는 보장하지 않는다.
func (r *BlogRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.BlogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(docs))
	for i, d := range docs {
		p, err := d.ToPost()
		if err != nil {
			return nil, fmt.Errorf("blogs[%d]: %w", i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
