package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psicoclinica-server/config"
	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"
	"psicoclinica-server/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	profileRepo repository.UserProfileRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	staffEmails map[string]struct{}
}

func NewAuthUsecase(
	log *logrus.Logger,
	profileRepo repository.UserProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	clinicCfg config.ClinicConfig,
) AuthUsecase {
	staff := make(map[string]struct{}, len(clinicCfg.PsychologistEmails))
	for _, email := range clinicCfg.PsychologistEmails {
		staff[strings.ToLower(email)] = struct{}{}
	}
	return &authUsecase{
		log:         log,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		staffEmails: staff,
	}
}

// Register creates a profile with the default patient role. Staff
// accounts are still registered as patients; the allow-list elevation
// runs on sign-in.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	profile := &entity.UserProfile{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     entity.RolePatient,
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user profile: %+v", err)
		return nil, err
	}

	return converter.UserProfileToResponse(profile), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := u.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err = u.elevateRoleIfStaff(ctx, profile)
	if err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, profile)
}

// elevateRoleIfStaff applies the one-way self-healing correction: a
// profile whose email is on the staff allow-list but whose stored role is
// not psychologist is fixed in place and re-read. Nothing ever demotes.
func (u *authUsecase) elevateRoleIfStaff(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	if _, ok := u.staffEmails[strings.ToLower(profile.Email)]; !ok {
		return profile, nil
	}
	if profile.IsPsychologist() {
		return profile, nil
	}

	if err := u.profileRepo.UpdateRole(ctx, profile.ID, entity.RolePsychologist); err != nil {
		u.log.Warnf("Failed to elevate role for %s: %+v", profile.Email, err)
		return nil, err
	}

	updated, err := u.profileRepo.FindByID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	u.log.Infof("Elevated %s to psychologist role", updated.Email)
	return updated, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, profile *entity.UserProfile) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", profile.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", profile.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list token keys for %s: %+v", pattern, err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete token keys for %s: %+v", pattern, err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	// Re-read the profile so a role elevated since the last sign-in is
	// reflected in the new tokens.
	profile, err := u.profileRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, profile)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserProfileToResponse(profile), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
