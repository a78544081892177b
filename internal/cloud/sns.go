package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// SNSClient wraps AWS SNS for maintenance alert notifications.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
	ctx      context.Context
}

// NewSNSClient creates a new SNS client instance.
func NewSNSClient(region, topicArn string) (*SNSClient, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		ctx:      ctx,
	}, nil
}

// SendAlert publishes a plain alert message to the topic.
func (c *SNSClient) SendAlert(subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	if _, err := c.svc.Publish(c.ctx, input); err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}
	return nil
}

// SendMaintenanceAlert formats and publishes an alert for one critical
// prediction.
func (c *SNSClient) SendMaintenanceAlert(assetName string, p domain.Prediction) error {
	subject := fmt.Sprintf("Maintenance Alert: %s on %s", p.Priority, assetName)
	message := fmt.Sprintf(
		"Predictive Maintenance Alert\n\n"+
			"Asset: %s\n"+
			"Equipment: %s (%s)\n"+
			"Priority: %s\n"+
			"Health Score: %.1f%%\n"+
			"Predicted Issue: %s\n"+
			"Remaining Life: %.0f %s\n"+
			"Recommended Action: %s\n"+
			"Maintenance Window: %s\n",
		assetName, p.EquipmentName, p.EquipmentType, p.Priority,
		p.HealthScore, p.PredictedIssue, p.RemainingLife.Value, p.RemainingLife.Unit,
		p.RecommendedAction, p.MaintenanceWindow)

	return c.SendAlert(subject, message)
}
