package repositories

import (
	"errors"

	"fellowship_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStartupNotFound = errors.New("startup not found")
)

type StartupRepository interface {
	Create(db *gorm.DB, startup *models.Startup) error
	FindByID(db *gorm.DB, id string) (*models.Startup, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Startup, error)
	ExistsByUserID(db *gorm.DB, userID string) (bool, error)
	FindAll(db *gorm.DB, filter ListFilter) ([]models.Startup, error)
	Update(db *gorm.DB, startup *models.Startup) error
	Delete(db *gorm.DB, id string) error
}

type StartupRepositoryImpl struct{}

func NewStartupRepository() StartupRepository {
	return &StartupRepositoryImpl{}
}

func (r *StartupRepositoryImpl) Create(db *gorm.DB, startup *models.Startup) error {
	return db.Create(startup).Error
}

func (r *StartupRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Startup, error) {
	var startup models.Startup
	err := db.First(&startup, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *StartupRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Startup, error) {
	var startup models.Startup
	err := db.First(&startup, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *StartupRepositoryImpl) ExistsByUserID(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Startup{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *StartupRepositoryImpl) FindAll(db *gorm.DB, filter ListFilter) ([]models.Startup, error) {
	var startups []models.Startup

	query := db.Model(&models.Startup{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Term != "" {
		query = query.Where("term = ?", filter.Term)
	}

	err := query.Order("submitted_at ASC").Find(&startups).Error
	return startups, err
}

func (r *StartupRepositoryImpl) Update(db *gorm.DB, startup *models.Startup) error {
	return db.Save(startup).Error
}

func (r *StartupRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Startup{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStartupNotFound
	}
	return nil
}
