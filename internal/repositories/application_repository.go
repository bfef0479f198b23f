package repositories

import (
	"errors"

	"fellowship_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

// ListFilter - опциональные фильтры админских списков
type ListFilter struct {
	Status string
	Term   string
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.StudentApplication) error
	FindByID(db *gorm.DB, id string) (*models.StudentApplication, error)
	FindByUserID(db *gorm.DB, userID string) (*models.StudentApplication, error)
	ExistsByUserID(db *gorm.DB, userID string) (bool, error)
	// FindAll возвращает заявки в порядке подачи
	FindAll(db *gorm.DB, filter ListFilter) ([]models.StudentApplication, error)
	Update(db *gorm.DB, app *models.StudentApplication) error
	Delete(db *gorm.DB, id string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.StudentApplication) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.StudentApplication, error) {
	var app models.StudentApplication
	err := db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.StudentApplication, error) {
	var app models.StudentApplication
	err := db.First(&app, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsByUserID(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.StudentApplication{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB, filter ListFilter) ([]models.StudentApplication, error) {
	var apps []models.StudentApplication

	query := db.Model(&models.StudentApplication{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Term != "" {
		query = query.Where("term = ?", filter.Term)
	}

	err := query.Order("submitted_at ASC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.StudentApplication) error {
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.StudentApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
