package repository

import (
	"github.com/lshigami/Sifaka/internal/model"
	"gorm.io/gorm"
)

type PaperRepository interface {
	Create(record *model.PaperRecord) error
	FindByID(id uint) (*model.PaperRecord, error)
	FindAll() ([]model.PaperRecord, error)
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(record *model.PaperRecord) error {
	return r.db.Create(record).Error
}

func (r *paperRepository) FindByID(id uint) (*model.PaperRecord, error) {
	var record model.PaperRecord
	err := r.db.First(&record, id).Error
	return &record, err
}

func (r *paperRepository) FindAll() ([]model.PaperRecord, error) {
	var records []model.PaperRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}
