package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-front/internal/logger"
)

const connectTimeout = 10 * time.Second

// Connect는 Mongo 클라이언트를 만들고 Primary에 ping 해 연결을 확인한 뒤 database를 반환한다.
// 호출자는 사용이 끝나면 Disconnect 를 호출해야 한다.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, fmt.Errorf("mongo: empty uri")
	}
	if database == "" {
		database = "blog"
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	logger.InfoWithFields("MongoDB connected", logger.Fields{"database": database})
	return cl, cl.Database(database), nil
}

// Disconnect는 nil 클라이언트도 허용한다.
func Disconnect(ctx context.Context, cl *mongo.Client) {
	if cl == nil {
		return
	}
	if err := cl.Disconnect(ctx); err != nil {
		logger.WarnWithFields("MongoDB disconnect failed", logger.Fields{"error": err.Error()})
	}
}
