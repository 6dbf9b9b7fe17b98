package services

import (
	"context"
	"errors"
	"time"

	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/utility"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrConflict marks duplicate-signup attempts.
var ErrConflict = errors.New("user already exists")

// SignInData is the response shape for signup and login.
type SignInData struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

type UserService struct {
	users    repositories.UserRepository
	validate *validator.Validate
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users, validate: validator.New()}
}

// HashPassword is used to encrypt the password before it is stored in the DB.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks the input password against the stored hash.
func VerifyPassword(providedPassword string, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedPassword)) == nil
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (*SignInData, error) {
	if err := s.validate.Struct(user); err != nil {
		return nil, validationErrorf("fields not valid: %v", err)
	}

	alreadyExists, err := s.users.CountByEmail(ctx, *user.Email)
	if err != nil {
		return nil, err
	}
	if alreadyExists > 0 {
		return nil, ErrConflict
	}

	hashed, err := HashPassword(*user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = &hashed

	user.ID = primitive.NewObjectID()
	user.UserID = user.ID.Hex()
	if user.Role != models.RoleAdmin {
		user.Role = models.RoleUser
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	token, refreshToken, err := utility.GenerateAllTokens(*user.Email, *user.FirstName, *user.LastName, user.UserID)
	if err != nil {
		return nil, err
	}
	user.Token = &token
	user.RefreshToken = &refreshToken

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	return &SignInData{
		UserID:    user.UserID,
		FirstName: *user.FirstName,
		LastName:  *user.LastName,
		Email:     *user.Email,
		Role:      user.Role,
		Token:     token,
	}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*SignInData, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, *user.Password) {
		return nil, validationErrorf("email or password is incorrect")
	}

	token, refreshToken, err := utility.GenerateAllTokens(*user.Email, *user.FirstName, *user.LastName, user.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateTokens(ctx, user.UserID, token, refreshToken); err != nil {
		return nil, err
	}

	return &SignInData{
		UserID:    user.UserID,
		FirstName: *user.FirstName,
		LastName:  *user.LastName,
		Email:     *user.Email,
		Role:      user.Role,
		Token:     token,
	}, nil
}

// AdminLogin verifies the password and the admin role, then issues a token
// signed with the admin secret.
func (s *UserService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !VerifyPassword(password, *user.Password) {
		return "", validationErrorf("email or password is incorrect")
	}
	if user.Role != models.RoleAdmin {
		return "", validationErrorf("not an admin account")
	}
	return utility.GenerateAdminToken(*user.Email, user.UserID)
}
