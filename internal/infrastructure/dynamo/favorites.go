package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/movie-notes-api/internal/domain"
)

// FavoriteRepo provides typed DynamoDB operations for the favorites table.
type FavoriteRepo struct {
	conn      *Conn
	tableName string
}

func NewFavoriteRepo(conn *Conn, tableName string) *FavoriteRepo {
	return &FavoriteRepo{conn: conn, tableName: tableName}
}

func (r *FavoriteRepo) Put(ctx context.Context, f *domain.Favorite) error {
	api, err := r.conn.API(ctx)
	if err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal favorite: %w", err)
	}
	_, err = api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByUser returns every favorite owned by userID, oldest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	api, err := r.conn.API(ctx)
	if err != nil {
		return nil, err
	}
	favs := []domain.Favorite{}
	p := dynamodb.NewQueryPaginator(api, byUserQuery(r.tableName, userID))
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Favorite
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		favs = append(favs, page...)
	}
	return favs, nil
}
