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

const defaultInvoicesTableName = "facturas"

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: _id (string)
//
// The store has no grouping primitives, so the revenue and totals
// aggregations fold over scans here.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)
var _ interfaces.ISequenceSource = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FACTURAS_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) FindAll(ctx context.Context) ([]entities.Invoice, error) {
	out, err := r.scanInvoices(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	sortByIssueDateDesc(out)
	return out, nil
}

func (r *InvoiceDynamoRepository) FindByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func (r *InvoiceDynamoRepository) FindByNumber(ctx context.Context, number string) (entities.Invoice, error) {
	results, err := r.scanInvoices(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#num = :num"),
		ExpressionAttributeNames: map[string]string{
			"#num": "numeroFactura",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(results) == 0 {
		return entities.Invoice{}, nil
	}
	return results[0], nil
}

func (r *InvoiceDynamoRepository) FindByWarrantyID(ctx context.Context, warrantyID string) (entities.Invoice, error) {
	results, err := r.scanInvoices(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#gid = :gid"),
		ExpressionAttributeNames: map[string]string{
			"#gid": "garantiaId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: warrantyID},
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(results) == 0 {
		return entities.Invoice{}, nil
	}
	return results[0], nil
}

func (r *InvoiceDynamoRepository) FindByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	out, err := r.scanInvoices(ctx, statusFilterInput(r.tableName, status))
	if err != nil {
		return nil, err
	}
	sortByIssueDateDesc(out)
	return out, nil
}

// FindByIssueDateRange lists invoices issued between from and to inclusive,
// newest first. Issue dates persist as day strings, so BETWEEN compares them
// correctly.
func (r *InvoiceDynamoRepository) FindByIssueDateRange(ctx context.Context, from, to time.Time) ([]entities.Invoice, error) {
	out, err := r.scanInvoices(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#emision BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#emision": "fechaEmision",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: encodeDate(from)},
			":to":   &types.AttributeValueMemberS{Value: encodeDate(to)},
		},
	})
	if err != nil {
		return nil, err
	}
	sortByIssueDateDesc(out)
	return out, nil
}

// Search matches text case-insensitively against the invoice number and the
// customer name and tax id, in memory after the scan.
func (r *InvoiceDynamoRepository) Search(ctx context.Context, text string) ([]entities.Invoice, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return all, nil
	}

	var out []entities.Invoice
	for _, f := range all {
		if invoiceMatches(f, needle) {
			out = append(out, f)
		}
	}
	return out, nil
}

func invoiceMatches(f entities.Invoice, needle string) bool {
	for _, field := range []string{f.Number, f.Customer.Name, f.Customer.TaxID} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *InvoiceDynamoRepository) Insert(ctx context.Context, f entities.Invoice) (string, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toInvoiceItem(f))
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
	return f.ID, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, f entities.Invoice) (bool, error) {
	if f.ID == "" {
		return false, errMissingDocumentID
	}
	av, err := attributevalue.MarshalMap(toInvoiceItem(f))
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

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *InvoiceDynamoRepository) CountTotal(ctx context.Context) (int64, error) {
	var total int64
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	}
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

// CountByStatus reports one entry per known status symbol, zero included.
func (r *InvoiceDynamoRepository) CountByStatus(ctx context.Context) (map[entities.InvoiceStatus]int64, error) {
	counts := make(map[entities.InvoiceStatus]int64, len(entities.InvoiceStatuses()))
	for _, status := range entities.InvoiceStatuses() {
		counts[status] = 0
	}

	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range all {
		if _, known := counts[f.Status]; known {
			counts[f.Status]++
		}
	}
	return counts, nil
}

// TotalsByStatus sums invoice totals per known status symbol, zero included.
func (r *InvoiceDynamoRepository) TotalsByStatus(ctx context.Context) (map[entities.InvoiceStatus]float64, error) {
	totals := make(map[entities.InvoiceStatus]float64, len(entities.InvoiceStatuses()))
	for _, status := range entities.InvoiceStatuses() {
		totals[status] = 0
	}

	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range all {
		if _, known := totals[f.Status]; known {
			totals[f.Status] += f.Total
		}
	}
	return totals, nil
}

func (r *InvoiceDynamoRepository) SumPaidTotal(ctx context.Context) (float64, error) {
	paid, err := r.scanInvoices(ctx, statusFilterInput(r.tableName, entities.InvoiceStatusPaid))
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, f := range paid {
		sum += f.Total
	}
	return sum, nil
}

// RevenueByMonth buckets paid invoice totals by issue month for the given
// year. Every month appears in the result so chart consumers never see gaps.
func (r *InvoiceDynamoRepository) RevenueByMonth(ctx context.Context, year int) (map[int]float64, error) {
	revenue := make(map[int]float64, 12)
	for m := 1; m <= 12; m++ {
		revenue[m] = 0
	}

	paid, err := r.scanInvoices(ctx, statusFilterInput(r.tableName, entities.InvoiceStatusPaid))
	if err != nil {
		return nil, err
	}
	for _, f := range paid {
		if f.IssueDate.IsZero() || f.IssueDate.Year() != year {
			continue
		}
		revenue[int(f.IssueDate.Month())] += f.Total
	}
	return revenue, nil
}

// LastNumberWithPrefix returns the highest stored invoice number carrying
// the prefix, or empty when none exists yet.
func (r *InvoiceDynamoRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	input := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#num"),
		FilterExpression:     aws.String("begins_with(#num, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#num": "numeroFactura",
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
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				continue
			}
			if it.NumeroFactura > highest {
				highest = it.NumeroFactura
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return highest, nil
}

// statusFilterInput matches estado and, for documents predating the rename,
// the legacy estadoFactura attribute.
func statusFilterInput(table string, status entities.InvoiceStatus) *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("#estado = :estado OR #legacy = :estado"),
		ExpressionAttributeNames: map[string]string{
			"#estado": "estado",
			"#legacy": "estadoFactura",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		},
	}
}

func sortByIssueDateDesc(invoices []entities.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].IssueDate.After(invoices[j].IssueDate)
	})
}

func (r *InvoiceDynamoRepository) scanInvoices(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Invoice, error) {
	var results []entities.Invoice
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				log.Warn().Err(err).Msg("skipping unreadable facturas document")
				continue
			}
			f, err := fromInvoiceItem(it)
			if err != nil {
				log.Warn().Err(err).Str("numeroFactura", it.NumeroFactura).Msg("skipping malformed facturas document")
				continue
			}
			results = append(results, f)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return results, nil
}
