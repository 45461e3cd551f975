package repository

import (
	"context"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"gorm.io/gorm"
)

// MaterialGeneralRepository defines the data access contract for general
// material.
type MaterialGeneralRepository interface {
	Create(ctx context.Context, m *model.MaterialGeneral) error
	FindByID(ctx context.Context, id uint) (*model.MaterialGeneral, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.MaterialGeneral, error)
	ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.MaterialGeneral, error)
	List(ctx context.Context) ([]model.MaterialGeneral, error)
	Update(ctx context.Context, m *model.MaterialGeneral) error
	DeleteTx(tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type materialGeneralRepo struct{ db *gorm.DB }

func NewMaterialGeneralRepository(db *gorm.DB) MaterialGeneralRepository {
	return &materialGeneralRepo{db: db}
}

func (r *materialGeneralRepo) Create(ctx context.Context, m *model.MaterialGeneral) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialGeneralRepo) FindByID(ctx context.Context, id uint) (*model.MaterialGeneral, error) {
	var m model.MaterialGeneral
	err := r.db.WithContext(ctx).Preload("Grupo").First(&m, id).Error
	return &m, err
}

func (r *materialGeneralRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.MaterialGeneral, error) {
	var m model.MaterialGeneral
	err := r.db.WithContext(ctx).Preload("Grupo").
		Where("codigo_barras = ?", codigo).First(&m).Error
	return &m, err
}

func (r *materialGeneralRepo) ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.MaterialGeneral, error) {
	var materiales []model.MaterialGeneral
	err := r.db.WithContext(ctx).Preload("Grupo").
		Joins("JOIN grupos ON grupos.id = material_general.grupo_id").
		Where("grupos.nombre = ?", grupoNombre).
		Find(&materiales).Error
	return materiales, err
}

func (r *materialGeneralRepo) List(ctx context.Context) ([]model.MaterialGeneral, error) {
	var materiales []model.MaterialGeneral
	err := r.db.WithContext(ctx).Preload("Grupo").Find(&materiales).Error
	return materiales, err
}

func (r *materialGeneralRepo) Update(ctx context.Context, m *model.MaterialGeneral) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialGeneralRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.MaterialGeneral{}, id).Error
}

func (r *materialGeneralRepo) DB() *gorm.DB { return r.db }
