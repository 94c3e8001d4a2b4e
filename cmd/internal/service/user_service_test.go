package service

import (
	"smartnotes/cmd/internal/contract"
	cognitoclient "smartnotes/cmd/internal/infrastructure/aws/cognito"
	"smartnotes/cmd/internal/utils/apierror"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCognito struct {
	signUpErr  error
	confirmErr error
	deleted    []string
	resent     []string
}

func (f *fakeCognito) SignUp(user *cognitoclient.User) (string, error) {
	if f.signUpErr != nil {
		return "", f.signUpErr
	}
	return "sub-" + user.Email, nil
}

func (f *fakeCognito) SignIn(*cognitoclient.UserLogin) (*cognitoclient.AuthCreate, error) {
	return &cognitoclient.AuthCreate{AccessToken: "access", IDToken: "id"}, nil
}

func (f *fakeCognito) ConfirmAccount(*cognitoclient.UserConfirmation) error {
	return f.confirmErr
}

func (f *fakeCognito) ResendConfirmation(email string) error {
	f.resent = append(f.resent, email)
	return nil
}

func (f *fakeCognito) AdminDeleteUser(email string) error {
	f.deleted = append(f.deleted, email)
	return nil
}

const validPassword = "Sup3r$ecret"

func TestCreateUserAndConfirm(t *testing.T) {
	env := newTestEnv(t)
	cog := &fakeCognito{}
	svc := NewUserService(env.userRepo, env.validate, cog, env.policy)

	req := &contract.CreateUserRequest{Username: " ana ", Email: "ana@example.com", Password: validPassword}
	require.Nil(t, svc.CreateUser(req))

	user, err := env.userRepo.FindActiveByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "sub-ana@example.com", user.SubUUID)
	assert.False(t, user.EmailVerified)

	status, apierr := svc.CheckEmail(&contract.UserStatusRequest{Email: "ana@example.com"})
	require.Nil(t, apierr)
	assert.Equal(t, contract.EmailStatusVerifying, *status)

	// Resending never marks the user as verified
	require.Nil(t, svc.ResendConfirmation(&contract.ResendConfirmRequest{Email: "ana@example.com"}))
	assert.Equal(t, []string{"ana@example.com"}, cog.resent)
	user, err = env.userRepo.FindActiveByEmail("ana@example.com")
	require.NoError(t, err)
	assert.False(t, user.EmailVerified)

	require.Nil(t, svc.ConfirmSignup(&contract.ConfirmSignupRequest{Email: "ana@example.com", Code: "123456"}))

	status, apierr = svc.CheckEmail(&contract.UserStatusRequest{Email: "ana@example.com"})
	require.Nil(t, apierr)
	assert.Equal(t, contract.EmailStatusExists, *status)

	apierr = svc.ConfirmSignup(&contract.ConfirmSignupRequest{Email: "ana@example.com", Code: "123456"})
	assert.Equal(t, apierror.UserAlreadyConfirmedError, apierr)

	apierr = svc.CreateUser(req)
	assert.Equal(t, apierror.UserAlreadyExistsError, apierr)
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, env.validate, &fakeCognito{}, env.policy)

	apierr := svc.CreateUser(&contract.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: "weakpass"})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestCreateUserMapsCognitoErrors(t *testing.T) {
	env := newTestEnv(t)
	cog := &fakeCognito{signUpErr: &types.UsernameExistsException{}}
	svc := NewUserService(env.userRepo, env.validate, cog, env.policy)

	apierr := svc.CreateUser(&contract.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: validPassword})
	assert.Equal(t, apierror.IDPExistingEmailError, apierr)

	user, err := env.userRepo.FindActiveByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, env.validate, &fakeCognito{}, env.policy)

	_, apierr := svc.Login(&contract.UserLoginRequest{Email: "ghost@example.com", Password: validPassword})
	assert.Equal(t, apierror.IDPUserNotFoundError, apierr)

	require.Nil(t, svc.CreateUser(&contract.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: validPassword}))

	resp, apierr := svc.Login(&contract.UserLoginRequest{Email: "ana@example.com", Password: validPassword})
	require.Nil(t, apierr)
	assert.Equal(t, "access", resp.AccessToken)
}

func TestConfirmSignupCodeMismatch(t *testing.T) {
	env := newTestEnv(t)
	cog := &fakeCognito{confirmErr: &types.CodeMismatchException{}}
	svc := NewUserService(env.userRepo, env.validate, cog, env.policy)

	require.Nil(t, svc.CreateUser(&contract.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: validPassword}))

	apierr := svc.ConfirmSignup(&contract.ConfirmSignupRequest{Email: "ana@example.com", Code: "000000"})
	assert.Equal(t, apierror.IDPConfirmCodeMismatchError, apierr)
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, env.validate, &fakeCognito{}, env.policy)

	me, apierr := svc.GetMe(actor(7))
	require.Nil(t, apierr)
	assert.Equal(t, int64(7), me.ID)

	_, apierr = svc.GetMe(nil)
	assert.Equal(t, apierror.UnauthorizedError, apierr)
}
