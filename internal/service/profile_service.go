package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intranet-api/internal/client"
	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
	"intranet-api/internal/response"
)

// AvatarUpload carries a presigned upload URL and the final avatar URL
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
}

// ProfileService handles the caller's own user record
type ProfileService struct {
	users    repository.UserRepository
	s3Client client.S3ClientInterface
}

// NewProfileService creates a new ProfileService. s3Client may be nil when
// avatar storage is not configured.
func NewProfileService(users repository.UserRepository, s3Client client.S3ClientInterface) *ProfileService {
	return &ProfileService{users: users, s3Client: s3Client}
}

// Get returns the caller's profile
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Update applies the non-nil fields of the request to the caller's profile
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// PresignAvatar returns a presigned upload URL for the caller's new avatar
func (s *ProfileService) PresignAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string) (*AvatarUpload, error) {
	if s.s3Client == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Avatar storage is not configured", "")
	}
	uploadURL, key, err := s.s3Client.PresignAvatarUpload(ctx, userID, fileName, contentType)
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{
		UploadURL: uploadURL,
		AvatarURL: s.s3Client.GetFileURL(key),
	}, nil
}
