package sport

import (
	"errors"

	"gorm.io/gorm"
)

type SportRepository interface {
	CreateSport(sport *Sport) error
	GetAllSports() ([]Sport, error)
	FindSportByName(name string) (*Sport, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) CreateSport(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *sportRepository) GetAllSports() ([]Sport, error) {
	var sports []Sport
	if err := r.db.Order("name ASC").Find(&sports).Error; err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *sportRepository) FindSportByName(name string) (*Sport, error) {
	var sport Sport
	err := r.db.Where("name = ?", name).First(&sport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // not found is not an error for the caller
		}
		return nil, err
	}
	return &sport, nil
}
