package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultWarrantiesTableName = "garantias"

// WarrantyDynamoRepository persists Warranty entities in DynamoDB.
//
// Table requirements:
//   - PK: _id (string)
//
// Listings and aggregations run over Scan with filter expressions; the
// collection sizes this serves (a single installer business) keep that
// affordable. Every attribute name in an expression is aliased because
// several of them (status, total) collide with reserved words.

type WarrantyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarrantyRepository = (*WarrantyDynamoRepository)(nil)
var _ interfaces.ISequenceSource = (*WarrantyDynamoRepository)(nil)

func NewWarrantyDynamoRepository(ddb *dynamodb.Client) *WarrantyDynamoRepository {
	return &WarrantyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GARANTIAS_TABLE", defaultWarrantiesTableName),
	}
}

func (r *WarrantyDynamoRepository) FindAll(ctx context.Context) ([]entities.Warranty, error) {
	out, err := r.scanWarranties(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *WarrantyDynamoRepository) FindByID(ctx context.Context, id string) (entities.Warranty, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warranty{}, nil
	}

	var it warrantyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warranty{}, err
	}
	return fromWarrantyItem(it)
}

func (r *WarrantyDynamoRepository) FindByNumber(ctx context.Context, number string) (entities.Warranty, error) {
	results, err := r.scanWarranties(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#num = :num"),
		ExpressionAttributeNames: map[string]string{
			"#num": "numeroGarantia",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	if len(results) == 0 {
		return entities.Warranty{}, nil
	}
	return results[0], nil
}

func (r *WarrantyDynamoRepository) FindByStatus(ctx context.Context, status entities.WarrantyStatus) ([]entities.Warranty, error) {
	out, err := r.scanWarranties(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#g.#estado = :estado"),
		ExpressionAttributeNames: map[string]string{
			"#g":      "garantia",
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FindExpiringWithin returns the warranties still marked active whose end
// date falls between today and today plus days, sorted soonest first. Day
// strings sort lexicographically in date order, so BETWEEN works on them.
func (r *WarrantyDynamoRepository) FindExpiringWithin(ctx context.Context, days int) ([]entities.Warranty, error) {
	today := todayLocal()
	from := encodeDate(today)
	to := encodeDate(today.AddDate(0, 0, days))

	out, err := r.scanWarranties(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#g.#estado = :activa AND #g.#fin BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#g":      "garantia",
			"#estado": "estado",
			"#fin":    "fechaFin",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":activa": &types.AttributeValueMemberS{Value: string(entities.WarrantyStatusActive)},
			":from":   &types.AttributeValueMemberS{Value: from},
			":to":     &types.AttributeValueMemberS{Value: to},
		},
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Coverage.EndDate.Before(out[j].Coverage.EndDate)
	})
	return out, nil
}

// Search matches text case-insensitively against the warranty number,
// customer name, customer phone, unit serial number and brand. DynamoDB
// has no case-insensitive contains, so the match runs here after the scan.
func (r *WarrantyDynamoRepository) Search(ctx context.Context, text string) ([]entities.Warranty, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return all, nil
	}

	var out []entities.Warranty
	for _, w := range all {
		if warrantyMatches(w, needle) {
			out = append(out, w)
		}
	}
	return out, nil
}

func warrantyMatches(w entities.Warranty, needle string) bool {
	for _, field := range []string{
		w.Number,
		w.Customer.Name,
		w.Customer.Phone,
		w.Unit.SerialNumber,
		w.Unit.Brand,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *WarrantyDynamoRepository) Insert(ctx context.Context, w entities.Warranty) (string, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toWarrantyItem(w))
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "_id",
		},
	})
	if err != nil {
		return "", err
	}
	return w.ID, nil
}

func (r *WarrantyDynamoRepository) Update(ctx context.Context, w entities.Warranty) (bool, error) {
	if w.ID == "" {
		return false, errMissingDocumentID
	}
	av, err := attributevalue.MarshalMap(toWarrantyItem(w))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WarrantyDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.WarrantyStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #g.#estado = :estado, #upd = :upd"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "_id",
			"#g":      "garantia",
			"#estado": "estado",
			"#upd":    "fechaActualizacion",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
			":upd":    &types.AttributeValueMemberS{Value: encodeInstant(time.Now())},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WarrantyDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"_id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *WarrantyDynamoRepository) CountTotal(ctx context.Context) (int64, error) {
	return r.countScan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
}

// CountByStatus reports one entry per known status symbol, zero included.
func (r *WarrantyDynamoRepository) CountByStatus(ctx context.Context) (map[entities.WarrantyStatus]int64, error) {
	counts := make(map[entities.WarrantyStatus]int64, len(entities.WarrantyStatuses()))
	for _, status := range entities.WarrantyStatuses() {
		n, err := r.countScan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#g.#estado = :estado"),
			ExpressionAttributeNames: map[string]string{
				"#g":      "garantia",
				"#estado": "estado",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":estado": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

func (r *WarrantyDynamoRepository) CountByBrand(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}

	input := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#aire.#marca"),
		ExpressionAttributeNames: map[string]string{
			"#aire":  "aireAcondicionado",
			"#marca": "marca",
		},
	}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it warrantyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				log.Warn().Err(err).Msg("skipping unreadable garantias document in brand count")
				continue
			}
			if it.AireAcondicionado == nil || it.AireAcondicionado.Marca == "" {
				continue
			}
			counts[it.AireAcondicionado.Marca]++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return counts, nil
}

// LastNumberWithPrefix returns the highest stored warranty number carrying
// the prefix, or empty when none exists yet.
func (r *WarrantyDynamoRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	input := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#num"),
		FilterExpression:     aws.String("begins_with(#num, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#num": "numeroGarantia",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	}

	var highest string
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return "", err
		}
		for _, item := range out.Items {
			var it warrantyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				continue
			}
			if it.NumeroGarantia > highest {
				highest = it.NumeroGarantia
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return highest, nil
}

// scanWarranties runs a full paginated scan with the given input and maps
// the results; documents that fail to decode are logged and skipped so one
// bad record cannot take a listing down.
func (r *WarrantyDynamoRepository) scanWarranties(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Warranty, error) {
	var results []entities.Warranty
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it warrantyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				log.Warn().Err(err).Msg("skipping unreadable garantias document")
				continue
			}
			w, err := fromWarrantyItem(it)
			if err != nil {
				log.Warn().Err(err).Str("numeroGarantia", it.NumeroGarantia).Msg("skipping malformed garantias document")
				continue
			}
			results = append(results, w)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return results, nil
}

func (r *WarrantyDynamoRepository) countScan(ctx context.Context, input *dynamodb.ScanInput) (int64, error) {
	var total int64
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return total, nil
}
