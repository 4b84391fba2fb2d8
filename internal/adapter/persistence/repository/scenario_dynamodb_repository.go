package repository

import (
	"context"
	"encoding/json"
	"time"

	"pricekit/internal/domain/entities"
	"pricekit/internal/domain/pricing"
	"pricekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultScenariosTableName = "scenarios"
	scenariosUserIDIndex      = "user_id-index"
)

type scenarioItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Name      string `dynamodbav:"name"`
	ModelType string `dynamodbav:"model_type"`
	CreatedAt string `dynamodbav:"created_at"`
	SavedAt   string `dynamodbav:"saved_at"`
	Inputs    string `dynamodbav:"inputs,omitempty"`
	Result    string `dynamodbav:"result,omitempty"`
}

// ScenarioDynamoRepository persists Scenario entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Inputs and result payloads are stored as JSON strings so the exact bytes a
// result was derived from survive round-tripping.

type ScenarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScenarioRepository = (*ScenarioDynamoRepository)(nil)

func NewScenarioDynamoRepository(ddb *dynamodb.Client) *ScenarioDynamoRepository {
	return &ScenarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SCENARIOS_TABLE", defaultScenariosTableName),
	}
}

// Put writes the scenario unconditionally. Overwrite semantics live in the
// usecase, which resolves the (user, name, model) key to an existing ID first.
func (r *ScenarioDynamoRepository) Put(ctx context.Context, s entities.Scenario) (entities.Scenario, error) {
	it := toScenarioItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Scenario{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Scenario{}, err
	}
	return s, nil
}

func (r *ScenarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Scenario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Scenario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Scenario{}, nil
	}

	var it scenarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Scenario{}, err
	}
	return fromScenarioItem(it), nil
}

func (r *ScenarioDynamoRepository) FindByUserNameModel(ctx context.Context, userID, name string, model pricing.ModelType) (entities.Scenario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(scenariosUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("#name = :name AND model_type = :model"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   &types.AttributeValueMemberS{Value: userID},
			":name":  &types.AttributeValueMemberS{Value: name},
			":model": &types.AttributeValueMemberS{Value: string(model)},
		},
	})
	if err != nil {
		return entities.Scenario{}, err
	}
	if len(out.Items) == 0 {
		return entities.Scenario{}, nil
	}

	var it scenarioItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Scenario{}, err
	}
	return fromScenarioItem(it), nil
}

func (r *ScenarioDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Scenario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(scenariosUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Scenario, 0, len(out.Items))
	for _, raw := range out.Items {
		var it scenarioItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromScenarioItem(it))
	}
	return items, nil
}

// DeleteByID removes the scenario and returns what was deleted. A zero-value
// scenario with nil error means the ID did not exist.
func (r *ScenarioDynamoRepository) DeleteByID(ctx context.Context, id string) (entities.Scenario, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Scenario{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Scenario{}, nil
	}

	var it scenarioItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Scenario{}, err
	}
	return fromScenarioItem(it), nil
}

func toScenarioItem(s entities.Scenario) scenarioItem {
	return scenarioItem{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		ModelType: string(s.ModelType),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		SavedAt:   s.SavedAt.UTC().Format(time.RFC3339Nano),
		Inputs:    string(s.InputsRaw),
		Result:    string(s.ResultRaw),
	}
}

func fromScenarioItem(it scenarioItem) entities.Scenario {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	savedAt, _ := time.Parse(time.RFC3339Nano, it.SavedAt)
	s := entities.Scenario{
		ID:        it.ID,
		UserID:    it.UserID,
		Name:      it.Name,
		ModelType: pricing.ModelType(it.ModelType),
		CreatedAt: createdAt,
		SavedAt:   savedAt,
	}
	if it.Inputs != "" {
		s.InputsRaw = json.RawMessage(it.Inputs)
	}
	if it.Result != "" {
		s.ResultRaw = json.RawMessage(it.Result)
	}
	return s
}
