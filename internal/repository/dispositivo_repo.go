package repository

import (
	"context"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"gorm.io/gorm"
)

// DispositivoRepository defines the data access contract for devices.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing against an in-memory store.
type DispositivoRepository interface {
	Create(ctx context.Context, d *model.Dispositivo) error
	FindByID(ctx context.Context, id uint) (*model.Dispositivo, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.Dispositivo, error)
	ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.Dispositivo, error)
	List(ctx context.Context) ([]model.Dispositivo, error)
	Update(ctx context.Context, d *model.Dispositivo) error
	DeleteTx(tx *gorm.DB, id uint) error

	// ExistsVPNCanal reports whether another device already holds the
	// (vpn, canal) pair. excludeID is skipped so edits can keep their own
	// assignment; pass 0 on create.
	ExistsVPNCanal(ctx context.Context, vpn, canal string, excludeID uint) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type dispositivoRepo struct{ db *gorm.DB }

func NewDispositivoRepository(db *gorm.DB) DispositivoRepository {
	return &dispositivoRepo{db: db}
}

func (r *dispositivoRepo) Create(ctx context.Context, d *model.Dispositivo) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dispositivoRepo) FindByID(ctx context.Context, id uint) (*model.Dispositivo, error) {
	var d model.Dispositivo
	err := r.db.WithContext(ctx).Preload("Grupo").First(&d, id).Error
	return &d, err
}

func (r *dispositivoRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.Dispositivo, error) {
	var d model.Dispositivo
	err := r.db.WithContext(ctx).Preload("Grupo").
		Where("codigo_barras = ?", codigo).First(&d).Error
	return &d, err
}

func (r *dispositivoRepo) ListByGrupoNombre(ctx context.Context, grupoNombre string) ([]model.Dispositivo, error) {
	var dispositivos []model.Dispositivo
	err := r.db.WithContext(ctx).Preload("Grupo").
		Joins("JOIN grupos ON grupos.id = dispositivos.grupo_id").
		Where("grupos.nombre = ?", grupoNombre).
		Find(&dispositivos).Error
	return dispositivos, err
}

func (r *dispositivoRepo) List(ctx context.Context) ([]model.Dispositivo, error) {
	var dispositivos []model.Dispositivo
	err := r.db.WithContext(ctx).Preload("Grupo").Find(&dispositivos).Error
	return dispositivos, err
}

func (r *dispositivoRepo) Update(ctx context.Context, d *model.Dispositivo) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *dispositivoRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Dispositivo{}, id).Error
}

func (r *dispositivoRepo) ExistsVPNCanal(ctx context.Context, vpn, canal string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Dispositivo{}).
		Where("vpn = ? AND canal_vpn = ?", vpn, canal)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *dispositivoRepo) DB() *gorm.DB { return r.db }
