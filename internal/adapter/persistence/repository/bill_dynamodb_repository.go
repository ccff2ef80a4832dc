package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName = "bills"
	billsEmailIndex       = "email-index"
)

type billItem struct {
	ID         string `dynamodbav:"id"`
	Email      string `dynamodbav:"email"`
	Type       string `dynamodbav:"type,omitempty"`
	Name       string `dynamodbav:"name,omitempty"`
	Amount     string `dynamodbav:"amount,omitempty"`
	Date       string `dynamodbav:"date,omitempty"`
	VAT        string `dynamodbav:"vat,omitempty"`
	Pct        string `dynamodbav:"pct,omitempty"`
	Commentary string `dynamodbav:"commentary,omitempty"`
	FileURL    string `dynamodbav:"file_url,omitempty"`
	FileName   string `dynamodbav:"file_name,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Date is stored exactly as received. Legacy rows may carry values that do
// not parse as YYYY-MM-DD; the repository never rejects them on read.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	it := toBillItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) Update(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #type = :type, #name = :name, #amount = :amount, " +
			"#date = :date, #vat = :vat, #pct = :pct, #commentary = :commentary, " +
			"#file_url = :file_url, #file_name = :file_name, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type":       &types.AttributeValueMemberS{Value: string(b.Type)},
			":name":       &types.AttributeValueMemberS{Value: b.Name},
			":amount":     &types.AttributeValueMemberS{Value: floatToString(b.Amount)},
			":date":       &types.AttributeValueMemberS{Value: b.Date},
			":vat":        &types.AttributeValueMemberS{Value: floatToString(b.VAT)},
			":pct":        &types.AttributeValueMemberS{Value: floatToString(b.Pct)},
			":commentary": &types.AttributeValueMemberS{Value: b.Commentary},
			":file_url":   &types.AttributeValueMemberS{Value: b.FileURL},
			":file_name":  &types.AttributeValueMemberS{Value: b.FileName},
			":status":     &types.AttributeValueMemberS{Value: string(b.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#type":       "type",
			"#name":       "name",
			"#amount":     "amount",
			"#date":       "date",
			"#vat":        "vat",
			"#pct":        "pct",
			"#commentary": "commentary",
			"#file_url":   "file_url",
			"#file_name":  "file_name",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Bill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillItem(it))
	}
	return items, nil
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:         b.ID,
		Email:      b.Email,
		Type:       string(b.Type),
		Name:       b.Name,
		Amount:     floatToString(b.Amount),
		Date:       b.Date,
		VAT:        floatToString(b.VAT),
		Pct:        floatToString(b.Pct),
		Commentary: b.Commentary,
		FileURL:    b.FileURL,
		FileName:   b.FileName,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillItem(it billItem) entities.Bill {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	vat, _ := strconv.ParseFloat(it.VAT, 64)
	pct, _ := strconv.ParseFloat(it.Pct, 64)
	return entities.Bill{
		ID:         it.ID,
		Email:      it.Email,
		Type:       entities.ExpenseType(it.Type),
		Name:       it.Name,
		Amount:     amount,
		Date:       it.Date,
		VAT:        vat,
		Pct:        pct,
		Commentary: it.Commentary,
		FileURL:    it.FileURL,
		FileName:   it.FileName,
		Status:     entities.BillStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
