package repository

import (
	"context"

	"go-fuelstation/internal/model"

	"gorm.io/gorm"
)

type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Credential, error)
	Create(ctx context.Context, credential *model.Credential) error
}

type credentialRepo struct {
	db *gorm.DB
}

func NewCredentialRepo(db *gorm.DB) CredentialRepository {
	return &credentialRepo{db}
}

func (r *credentialRepo) FindByUsername(ctx context.Context, username string) (*model.Credential, error) {
	var credential model.Credential
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&credential).Error; err != nil {
		return nil, translate(err)
	}
	return &credential, nil
}

func (r *credentialRepo) Create(ctx context.Context, credential *model.Credential) error {
	return translate(r.db.WithContext(ctx).Create(credential).Error)
}
