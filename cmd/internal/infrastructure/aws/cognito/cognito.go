package cognitoclient

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// User is the default user struct for all basic Cognito operations.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserConfirmation is the default structure for approving e-mail verification.
type UserConfirmation struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// UserLogin defines the standard structure for logging in to the application.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthCreate represents the response of Cognito sign in approval.
type AuthCreate struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

type CognitoInterface interface {
	SignUp(user *User) (string, error)
	SignIn(user *UserLogin) (*AuthCreate, error)
	ConfirmAccount(user *UserConfirmation) error
	ResendConfirmation(email string) error
	AdminDeleteUser(email string) error
}

type cognitoClient struct {
	client      *cognito.Client
	appClientId string
	userPoolId  string
}

// InitCognitoClient builds the client from AWS_COGNITO_REGION,
// AWS_COGNITO_APP_CLIENT_ID and AWS_COGNITO_USER_POOL_ID.
func InitCognitoClient() (CognitoInterface, error) {
	appClientId := os.Getenv("AWS_COGNITO_APP_CLIENT_ID")
	if appClientId == "" {
		return nil, errors.New("AWS_COGNITO_APP_CLIENT_ID is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(os.Getenv("AWS_COGNITO_REGION")))
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		client:      cognito.NewFromConfig(cfg),
		appClientId: appClientId,
		userPoolId:  os.Getenv("AWS_COGNITO_USER_POOL_ID"),
	}, nil
}

// SignUp creates a new user row on Cognito and return its "sub" (the UUID)
func (c *cognitoClient) SignUp(user *User) (string, error) {
	out, err := c.client.SignUp(context.Background(), &cognito.SignUpInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(user.Email),
		Password: aws.String(user.Password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(user.Email),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.UserSub), nil
}

// ConfirmAccount is used to verify the user's e-mail address
func (c *cognitoClient) ConfirmAccount(user *UserConfirmation) error {
	_, err := c.client.ConfirmSignUp(context.Background(), &cognito.ConfirmSignUpInput{
		Username:         aws.String(user.Email),
		ConfirmationCode: aws.String(user.Code),
		ClientId:         aws.String(c.appClientId),
	})
	return err
}

// ResendConfirmation resends the verification code to the provided e-mail
func (c *cognitoClient) ResendConfirmation(email string) error {
	_, err := c.client.ResendConfirmationCode(context.Background(), &cognito.ResendConfirmationCodeInput{
		Username: aws.String(email),
		ClientId: aws.String(c.appClientId),
	})
	return err
}

// AdminDeleteUser removes the user from the pool. Used to roll back a
// sign-up whose local row could not be saved.
func (c *cognitoClient) AdminDeleteUser(email string) error {
	_, err := c.client.AdminDeleteUser(context.Background(), &cognito.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolId),
		Username:   aws.String(email),
	})
	return err
}

// SignIn signs the user in... pretty straightforward
func (c *cognitoClient) SignIn(user *UserLogin) (*AuthCreate, error) {
	result, err := c.client.InitiateAuth(context.Background(), &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": user.Email,
			"PASSWORD": user.Password,
		},
		ClientId: aws.String(c.appClientId),
	})
	if err != nil {
		return nil, err
	}

	if result.AuthenticationResult == nil {
		// A challenge (MFA, new password...) was issued instead of tokens
		return nil, errors.New("authentication requires a challenge response")
	}
	return &AuthCreate{
		IDToken:     aws.ToString(result.AuthenticationResult.IdToken),
		AccessToken: aws.ToString(result.AuthenticationResult.AccessToken),
	}, nil
}
