package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/issues"
)

// IssueFeedClient serves the known-issue override feed from a DynamoDB
// table keyed by asset id. The engine treats feed errors as non-fatal.
type IssueFeedClient struct {
	svc   *dynamodb.Client
	table string
	ctx   context.Context
}

// NewIssueFeedClient creates a DynamoDB-backed issue feed.
func NewIssueFeedClient(region, table string) (*IssueFeedClient, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &IssueFeedClient{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
		ctx:   ctx,
	}, nil
}

// issueItem is the DynamoDB shape of one known-issue record.
type issueItem struct {
	AssetID           string   `dynamodbav:"assetId"`
	Equipment         string   `dynamodbav:"equipment"`
	Issue             string   `dynamodbav:"issue"`
	Status            string   `dynamodbav:"status"`
	HealthScore       *float64 `dynamodbav:"healthScore,omitempty"`
	PredictedIssue    string   `dynamodbav:"predictedIssue,omitempty"`
	Priority          string   `dynamodbav:"priority,omitempty"`
	WarningSignals    []string `dynamodbav:"warningSignals,omitempty"`
	RecommendedAction string   `dynamodbav:"recommendedAction,omitempty"`
}

// Lookup returns the authoritative issue for an equipment item, or nil when
// none is on record. Matching follows the feed convention: case-insensitive
// substring on the first word of the equipment name.
func (c *IssueFeedClient) Lookup(assetID, equipmentName string) (*domain.KnownIssue, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("assetId = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assetID},
		},
	}

	result, err := c.svc.Query(c.ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query issue feed: %w", err)
	}

	var items []issueItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue items: %w", err)
	}

	for _, item := range items {
		if !issues.Match(item.Equipment, equipmentName) {
			continue
		}
		issue := &domain.KnownIssue{
			Issue:       item.Issue,
			Status:      item.Status,
			HealthScore: item.HealthScore,
		}
		if item.PredictedIssue != "" || item.RecommendedAction != "" {
			issue.Prediction = &domain.IssuePrediction{
				PredictedIssue:    item.PredictedIssue,
				Priority:          domain.Priority(item.Priority),
				WarningSignals:    item.WarningSignals,
				RecommendedAction: item.RecommendedAction,
			}
		}
		return issue, nil
	}

	return nil, nil
}
