package cognito

import (
	"fmt"

	"github.com/athsb009/cloud-cdn/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"
)

// Client wraps the Cognito user pool used for registration and login.
// The backend never stores credentials itself.
type Client struct {
	provider   *cognitoidentityprovider.CognitoIdentityProvider
	userPoolID string
	clientID   string
}

func NewClient(cfg *config.Config) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.BucketRegion),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		provider:   cognitoidentityprovider.New(sess),
		userPoolID: cfg.CognitoUserPoolID,
		clientID:   cfg.CognitoAppClientID,
	}, nil
}

// Register signs a new user up with the pool and returns the assigned
// user sub. Confirmation (email code) happens out of band.
func (c *Client) Register(email, password string) (string, error) {
	out, err := c.provider.SignUp(&cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []*cognitoidentityprovider.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return aws.StringValue(out.UserSub), nil
}

// Login authenticates against the pool and returns the ID token issued
// by Cognito.
func (c *Client) Login(email, password string) (string, error) {
	out, err := c.provider.InitiateAuth(&cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: aws.String(cognitoidentityprovider.AuthFlowTypeUserPasswordAuth),
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]*string{
			"USERNAME": aws.String(email),
			"PASSWORD": aws.String(password),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to authenticate user: %w", err)
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", fmt.Errorf("authentication did not yield a token")
	}

	return aws.StringValue(out.AuthenticationResult.IdToken), nil
}
