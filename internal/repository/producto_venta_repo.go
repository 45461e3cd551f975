package repository

import (
	"context"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"gorm.io/gorm"
)

// ProductoVentaRepository defines the data access contract for sale products.
type ProductoVentaRepository interface {
	Create(ctx context.Context, p *model.ProductoVenta) error
	FindByID(ctx context.Context, id uint) (*model.ProductoVenta, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.ProductoVenta, error)
	ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.ProductoVenta, error)
	List(ctx context.Context) ([]model.ProductoVenta, error)
	Update(ctx context.Context, p *model.ProductoVenta) error
	DeleteTx(tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type productoVentaRepo struct{ db *gorm.DB }

func NewProductoVentaRepository(db *gorm.DB) ProductoVentaRepository {
	return &productoVentaRepo{db: db}
}

func (r *productoVentaRepo) Create(ctx context.Context, p *model.ProductoVenta) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoVentaRepo) FindByID(ctx context.Context, id uint) (*model.ProductoVenta, error) {
	var p model.ProductoVenta
	err := r.db.WithContext(ctx).Preload("Grupo").First(&p, id).Error
	return &p, err
}

func (r *productoVentaRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.ProductoVenta, error) {
	var p model.ProductoVenta
	err := r.db.WithContext(ctx).Preload("Grupo").
		Where("codigo_barras = ?", codigo).First(&p).Error
	return &p, err
}

func (r *productoVentaRepo) ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.ProductoVenta, error) {
	var productos []model.ProductoVenta
	err := r.db.WithContext(ctx).Preload("Grupo").
		Joins("JOIN grupos ON grupos.id = productos_venta.grupo_id").
		Where("grupos.nombre = ?", grupoNombre).
		Find(&productos).Error
	return productos, err
}

func (r *productoVentaRepo) List(ctx context.Context) ([]model.ProductoVenta, error) {
	var productos []model.ProductoVenta
	err := r.db.WithContext(ctx).Preload("Grupo").Find(&productos).Error
	return productos, err
}

func (r *productoVentaRepo) Update(ctx context.Context, p *model.ProductoVenta) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoVentaRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.ProductoVenta{}, id).Error
}

func (r *productoVentaRepo) DB() *gorm.DB { return r.db }
