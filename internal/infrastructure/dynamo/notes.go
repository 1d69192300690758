package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/movie-notes-api/internal/domain"
)

// NoteRepo provides typed DynamoDB operations for the notes table.
type NoteRepo struct {
	conn      *Conn
	tableName string
}

func NewNoteRepo(conn *Conn, tableName string) *NoteRepo {
	return &NoteRepo{conn: conn, tableName: tableName}
}

func (r *NoteRepo) Put(ctx context.Context, n *domain.Note) error {
	api, err := r.conn.API(ctx)
	if err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	_, err = api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByUser returns every note owned by userID, oldest first.
func (r *NoteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	api, err := r.conn.API(ctx)
	if err != nil {
		return nil, err
	}
	notes := []domain.Note{}
	p := dynamodb.NewQueryPaginator(api, byUserQuery(r.tableName, userID))
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Note
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		notes = append(notes, page...)
	}
	return notes, nil
}

// DeleteForUser removes the note only when userID owns it.
func (r *NoteRepo) DeleteForUser(ctx context.Context, noteID, userID string) error {
	api, err := r.conn.API(ctx)
	if err != nil {
		return err
	}
	_, err = api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(fieldNoteID, noteID),
		ConditionExpression:       aws.String("#owner = :owner"),
		ExpressionAttributeNames:  map[string]string{"#owner": fieldUserID},
		ExpressionAttributeValues: map[string]types.AttributeValue{":owner": &types.AttributeValueMemberS{Value: userID}},
	})
	return ownerCheck(err)
}

// UpdateForUser applies updates to the note only when userID owns it.
func (r *NoteRepo) UpdateForUser(ctx context.Context, noteID, userID string, updates map[string]interface{}) error {
	api, err := r.conn.API(ctx)
	if err != nil {
		return err
	}
	updates[fieldUpdatedAt] = time.Now().UTC()
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	ue.Names["#owner"] = fieldUserID
	ue.Values[":owner"] = &types.AttributeValueMemberS{Value: userID}
	_, err = api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(fieldNoteID, noteID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("#owner = :owner"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return ownerCheck(err)
}

// ownerCheck turns a failed ownership condition into ErrNotFound: a note that
// does not exist and one owned by someone else look the same to the caller.
func ownerCheck(err error) error {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("note not found: %w", domain.ErrNotFound)
	}
	return err
}

// byUserQuery builds a user_id-index query shared by favorites and notes.
func byUserQuery(table, userID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(indexUserID),
		KeyConditionExpression:    aws.String("#uid = :uid"),
		ExpressionAttributeNames:  map[string]string{"#uid": fieldUserID},
		ExpressionAttributeValues: map[string]types.AttributeValue{":uid": &types.AttributeValueMemberS{Value: userID}},
	}
}
