package repository

import (
	"context"

	"avflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCollectionsTableName = "collections"

type collectionItem struct {
	Key     string `dynamodbav:"key"`
	Records string `dynamodbav:"records"`
}

// DynamoCollectionStorage keeps each entity collection as a single item in
// one DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// The records attribute holds the serialized collection verbatim; every Save
// replaces it whole, matching the full re-serialization model of the store.

type DynamoCollectionStorage struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollectionStorage = (*DynamoCollectionStorage)(nil)

func NewDynamoCollectionStorage(ddb *dynamodb.Client) *DynamoCollectionStorage {
	return &DynamoCollectionStorage{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName),
	}
}

// Load returns the blob stored under key, or nil bytes when the key has
// never been written.
func (s *DynamoCollectionStorage) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Records), nil
}

func (s *DynamoCollectionStorage) Save(ctx context.Context, key string, data []byte) error {
	av, err := attributevalue.MarshalMap(collectionItem{Key: key, Records: string(data)})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
