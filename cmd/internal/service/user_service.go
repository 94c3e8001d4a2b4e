package service

import (
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	cognitoclient "smartnotes/cmd/internal/infrastructure/aws/cognito"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	FindActiveByID(id int64) (*entity.User, error)
	ExistsActiveByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo   UserRepository
	Validate   *validator.Validate
	Cognito    cognitoclient.CognitoInterface
	NotePolicy *policy.NotePolicy
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, cogClient cognitoclient.CognitoInterface, notePolicy *policy.NotePolicy) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		Validate:   validate,
		Cognito:    cogClient,
		NotePolicy: notePolicy,
	}
}

func (u *UserService) GetMe(actor *entity.User) (*contract.UserResponse, apierror.ErrorResponse) {
	if apierr := u.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}
	return toUserResponse(actor), nil
}

func (u *UserService) CheckEmail(req *contract.UserStatusRequest) (*contract.EmailStatus, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	var status contract.EmailStatus
	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user (%s) exists: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	switch {
	case user == nil:
		status = contract.EmailStatusAvailable
	case !user.EmailVerified:
		status = contract.EmailStatusVerifying
	default:
		status = contract.EmailStatusExists
	}
	return &status, nil
}

// CreateUser creates a new user on Cognito (as well as in our database),
// and sends a verification code to the user's email address.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.UserAlreadyExistsError
	}

	cogUser := &cognitoclient.User{Email: req.Email, Password: req.Password}
	sub, apierr, revert := handleUserSignup(u.Cognito, cogUser)
	if apierr != nil {
		return apierr
	}

	now := utils.NowUTC()
	user := &entity.User{
		SubUUID:       sub,
		Username:      req.Username,
		Email:         req.Email,
		EmailVerified: false,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = u.UserRepo.Save(user); err != nil {
		revert()
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.Suspended {
		return nil, apierror.MissingAccessError
	}

	credentials := &cognitoclient.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	}

	auth, apierr := handleUserSignin(u.Cognito, credentials)
	if apierr != nil {
		return nil, apierr
	}
	return &contract.UserLoginResponse{AccessToken: auth.AccessToken, IDToken: auth.IDToken}, nil
}

func (u *UserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, apierr := u.fetchUnconfirmed(req.Email)
	if apierr != nil {
		return apierr
	}

	confirms := &cognitoclient.UserConfirmation{
		Email: req.Email,
		Code:  req.Code,
	}

	if apierr = handleSignupConfirmation(u.Cognito, confirms); apierr != nil {
		return apierr
	}

	user.EmailVerified = true
	user.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user (%d) verified status: %v", user.ID, err)
	}
	return nil
}

// ResendConfirmation asks Cognito for a new code. The user stays unverified
// until ConfirmSignup succeeds.
func (u *UserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	if _, apierr := u.fetchUnconfirmed(req.Email); apierr != nil {
		return apierr
	}
	return handleConfirmResend(u.Cognito, req.Email)
}

func (u *UserService) fetchUnconfirmed(email string) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindActiveByEmail(email)
	if err != nil {
		log.Errorf("failed to find user (%s) by email: %v", email, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return nil, apierror.UserAlreadyConfirmedError
	}
	return user, nil
}

func handleUserSignup(cogClient cognitoclient.CognitoInterface, req *cognitoclient.User) (string, apierror.ErrorResponse, func()) {
	revert := func() {
		if err := cogClient.AdminDeleteUser(req.Email); err != nil {
			log.Errorf("failed to revert Cognito signup of %s: %v", req.Email, err)
		}
	}

	sub, err := cogClient.SignUp(req)
	if err != nil {
		return "", utils.MapCognitoError(err), revert
	}
	return sub, nil, revert
}

func handleUserSignin(cogClient cognitoclient.CognitoInterface, req *cognitoclient.UserLogin) (*cognitoclient.AuthCreate, apierror.ErrorResponse) {
	auth, err := cogClient.SignIn(req)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}
	return auth, nil
}

func handleSignupConfirmation(cogClient cognitoclient.CognitoInterface, req *cognitoclient.UserConfirmation) apierror.ErrorResponse {
	if err := cogClient.ConfirmAccount(req); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func handleConfirmResend(cogClient cognitoclient.CognitoInterface, email string) apierror.ErrorResponse {
	if err := cogClient.ResendConfirmation(email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		IsVerified: user.EmailVerified,
		CreatedAt:  utils.FormatEpoch(user.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(user.UpdatedAt),
	}
}
