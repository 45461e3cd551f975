package repository

import (
	"context"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"gorm.io/gorm"
)

// GrupoRepository defines the data access contract for groups.
type GrupoRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Grupo, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Grupo, error)
	List(ctx context.Context) ([]model.Grupo, error)
}

type grupoRepo struct{ db *gorm.DB }

func NewGrupoRepository(db *gorm.DB) GrupoRepository { return &grupoRepo{db: db} }

func (r *grupoRepo) FindByID(ctx context.Context, id uint) (*model.Grupo, error) {
	var g model.Grupo
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *grupoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Grupo, error) {
	var g model.Grupo
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&g).Error
	return &g, err
}

func (r *grupoRepo) List(ctx context.Context) ([]model.Grupo, error) {
	var grupos []model.Grupo
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&grupos).Error
	return grupos, err
}
