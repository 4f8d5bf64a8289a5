package dynamodb

import (
	"context"
	"fmt"

	"github.com/JuanSebastianGarcia23/calzado/application/ports"
	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
	apperrors "github.com/JuanSebastianGarcia23/calzado/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// FootwearRepository implements ports.FootwearRepository on a single DynamoDB
// table keyed by the "id" attribute
type FootwearRepository struct {
	client    DynamoDBAPI
	tableName string
	logger    *zap.Logger
}

// NewFootwearRepository creates a new FootwearRepository
func NewFootwearRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *FootwearRepository {
	return &FootwearRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

var _ ports.FootwearRepository = (*FootwearRepository)(nil)

// footwearItem is the DynamoDB item structure. Unset optional fields are
// omitted rather than written as NULL.
type footwearItem struct {
	ID    string  `dynamodbav:"id"`
	Name  *string `dynamodbav:"nombre,omitempty"`
	Brand *string `dynamodbav:"marca,omitempty"`
	Price any     `dynamodbav:"precio,omitempty"`
	Size  any     `dynamodbav:"talla,omitempty"`
}

func toFootwearItem(item *footwear.Item) footwearItem {
	return footwearItem{
		ID:    item.ID,
		Name:  item.Name,
		Brand: item.Brand,
		Price: item.Price,
		Size:  item.Size,
	}
}

func (i footwearItem) toDomain() *footwear.Item {
	return &footwear.Item{
		ID:    i.ID,
		Name:  i.Name,
		Brand: i.Brand,
		Price: i.Price,
		Size:  i.Size,
	}
}

func (r *FootwearRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		footwear.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

// Put writes the item unconditionally
func (r *FootwearRepository) Put(ctx context.Context, item *footwear.Item) error {
	av, err := attributevalue.MarshalMap(toFootwearItem(item))
	if err != nil {
		return apperrors.NewInternalError("failed to marshal footwear item").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		return apperrors.NewDatabaseError("PutItem", err)
	}

	r.logger.Debug("Footwear item stored",
		zap.String("id", item.ID),
		zap.Int("attributes", len(av)),
	)

	return nil
}

// Get retrieves an item by id, returning nil when it does not exist
func (r *FootwearRepository) Get(ctx context.Context, id string) (*footwear.Item, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("GetItem", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var item footwearItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal footwear item").WithCause(err)
	}

	return item.toDomain(), nil
}

// Scan enumerates the whole table, following LastEvaluatedKey until the last
// page
func (r *FootwearRepository) Scan(ctx context.Context) ([]*footwear.Item, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	items := make([]*footwear.Item, 0)
	pages := 0

	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("Scan", err)
		}
		pages++

		var records []footwearItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal footwear items").WithCause(err)
		}
		for _, record := range records {
			items = append(items, record.toDomain())
		}
	}

	r.logger.Debug("Footwear table scanned",
		zap.Int("items", len(items)),
		zap.Int("pages", pages),
	)

	return items, nil
}

// Update sets the supplied attributes on the item. Nothing is written when
// attrs is empty. Like UpdateItem itself, updating a missing id creates it.
func (r *FootwearRepository) Update(ctx context.Context, id string, attrs footwear.Attributes) error {
	if attrs.IsEmpty() {
		return nil
	}

	expr, err := buildUpdateExpression(attrs)
	if err != nil {
		return apperrors.NewInternalError("failed to build update expression").WithCause(err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		return apperrors.NewDatabaseError("UpdateItem", err)
	}

	r.logger.Debug("Footwear item updated",
		zap.String("id", id),
		zap.Strings("fields", attrs.Names()),
	)

	return nil
}

// Delete removes the item by id
func (r *FootwearRepository) Delete(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return apperrors.NewDatabaseError("DeleteItem", err)
	}

	r.logger.Debug("Footwear item deleted", zap.String("id", id))

	return nil
}

// buildUpdateExpression turns the supplied attributes into a SET expression.
// Every attribute name and value goes through a generated placeholder
// (#0/:0, #1/:1, ...) so field names never clash with reserved words.
func buildUpdateExpression(attrs footwear.Attributes) (expression.Expression, error) {
	var update expression.UpdateBuilder
	for _, name := range attrs.Names() {
		if name == footwear.FieldID {
			return expression.Expression{}, fmt.Errorf("attribute %q is the primary key and cannot be updated", name)
		}
		update = update.Set(expression.Name(name), expression.Value(attrs[name]))
	}

	return expression.NewBuilder().WithUpdate(update).Build()
}
