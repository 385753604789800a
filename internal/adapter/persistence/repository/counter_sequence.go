package repository

import (
	"context"
	"fmt"
	"strconv"

	"garantias_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "secuencias"

// CounterNumberGenerator hands out sequence numbers from a per-prefix-and-year
// counter row, incremented atomically with an ADD update. Unlike the
// read-then-compute generator it never hands the same number to two
// concurrent callers. Enabled with SEQUENCE_MODE=atomic.
//
// Table requirements:
//   - PK: _id (string), one row per "<PREFIX>-<year>"

type CounterNumberGenerator struct {
	ddb       *dynamodb.Client
	tableName string
	prefix    string
}

var _ interfaces.INumberGenerator = (*CounterNumberGenerator)(nil)

func NewCounterNumberGenerator(ddb *dynamodb.Client, prefix string) *CounterNumberGenerator {
	return &CounterNumberGenerator{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
		prefix:    prefix,
	}
}

func (g *CounterNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	key := fmt.Sprintf("%s-%d", g.prefix, year)

	out, err := g.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(g.tableName),
		Key: map[string]types.AttributeValue{
			"_id": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "valor",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	attr, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("sequence counter %s returned no numeric value", key)
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("sequence counter %s holds a non-integer value %q: %w", key, attr.Value, err)
	}

	return fmt.Sprintf("%s-%04d", key, n), nil
}
