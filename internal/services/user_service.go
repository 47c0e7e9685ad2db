package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"landscout-backoffice/internal/auth"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/metrics"
)

// defaultFeatures is what a freshly registered organization is entitled to.
// Trials start with everything enabled; billing trims the list later.
var defaultFeatures = []string{"crm", "books", models.FeatureGISScraper}

type UserService struct {
	users     repositories.UserRepository
	orgs      repositories.OrganizationRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(users repositories.UserRepository, orgs repositories.OrganizationRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{
		users:     users,
		orgs:      orgs,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

// Register creates the user together with their organization. Every user
// belongs to exactly one organization; solo operators get one named after
// themselves.
func (s *UserService) Register(ctx context.Context, user *models.User) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(user); err != nil {
		return nil, err
	}

	if existing, err := s.users.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered")
	} else if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check email existence: %v", err)
	}

	start := time.Now()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	metrics.MongoOperationDuration.WithLabelValues("hash_password", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("hash_password", "").Inc()
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	org := &models.Organization{
		Name:     fmt.Sprintf("%s's Business", user.FullName),
		Features: defaultFeatures,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %v", err)
	}

	user.ID = primitive.NewObjectID()
	user.Password = string(hashedPassword)
	user.OrganizationID = org.ID.Hex()
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	return s.issueToken(user, org.Features)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to query user: %v", err)
	}

	start := time.Now()
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	metrics.MongoOperationDuration.WithLabelValues("verify_password", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("verify_password", "").Inc()
		return nil, fmt.Errorf("invalid email or password")
	}

	features := []string{}
	if org, err := s.orgs.FindByID(ctx, user.OrganizationID); err == nil && org != nil {
		features = org.Features
	}
	return s.issueToken(user, features)
}

func (s *UserService) issueToken(user *models.User, features []string) (*auth.TokenDetails, error) {
	start := time.Now()
	tokenDetails, err := auth.GenerateJWT(user.ID.Hex(), user.OrganizationID, user.FullName, user.Email, features, s.jwtSecret)
	metrics.MongoOperationDuration.WithLabelValues("generate_jwt", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("generate_jwt", "").Inc()
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return tokenDetails, nil
}
