package repository

import (
	"context"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"gorm.io/gorm"
)

// CodigoBarrasRepository is the persistence contract for the reservation set
// of issued barcodes.
type CodigoBarrasRepository interface {
	Exists(ctx context.Context, codigo string) (bool, error)
	Create(ctx context.Context, codigo string) error
	Delete(ctx context.Context, codigo string) error
	DeleteTx(tx *gorm.DB, codigo string) error
}

type codigoBarrasRepo struct{ db *gorm.DB }

func NewCodigoBarrasRepository(db *gorm.DB) CodigoBarrasRepository {
	return &codigoBarrasRepo{db: db}
}

func (r *codigoBarrasRepo) Exists(ctx context.Context, codigo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CodigoBarras{}).
		Where("codigo = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *codigoBarrasRepo) Create(ctx context.Context, codigo string) error {
	return r.db.WithContext(ctx).Create(&model.CodigoBarras{Codigo: codigo}).Error
}

func (r *codigoBarrasRepo) Delete(ctx context.Context, codigo string) error {
	return r.db.WithContext(ctx).Delete(&model.CodigoBarras{}, "codigo = ?", codigo).Error
}

func (r *codigoBarrasRepo) DeleteTx(tx *gorm.DB, codigo string) error {
	return tx.Delete(&model.CodigoBarras{}, "codigo = ?", codigo).Error
}
