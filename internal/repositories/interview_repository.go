package repositories

import (
	"errors"

	"fellowship_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInterviewNotFound = errors.New("interview not found")
)

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.Interview) error
	FindByApplicationID(db *gorm.DB, applicationID string) (*models.Interview, error)
	ExistsByApplicationID(db *gorm.DB, applicationID string) (bool, error)
	Update(db *gorm.DB, interview *models.Interview) error
}

type InterviewRepositoryImpl struct{}

func NewInterviewRepository() InterviewRepository {
	return &InterviewRepositoryImpl{}
}

func (r *InterviewRepositoryImpl) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByApplicationID(db *gorm.DB, applicationID string) (*models.Interview, error) {
	var interview models.Interview
	err := db.First(&interview, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) ExistsByApplicationID(db *gorm.DB, applicationID string) (bool, error) {
	var count int64
	err := db.Model(&models.Interview{}).Where("application_id = ?", applicationID).Count(&count).Error
	return count > 0, err
}

func (r *InterviewRepositoryImpl) Update(db *gorm.DB, interview *models.Interview) error {
	return db.Save(interview).Error
}
