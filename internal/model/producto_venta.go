package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoVenta represents a sale product lot.
type ProductoVenta struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	GrupoID         uint            `gorm:"index;not null" json:"grupo_id"`
	Marca           string          `gorm:"not null" json:"marca"`
	Descripcion     string          `gorm:"not null" json:"descripcion"`
	Caducidad       *time.Time      `json:"caducidad"`
	FechaAgregacion time.Time       `gorm:"not null" json:"fecha_agregacion"`
	Costo           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"costo"`
	Lote            string          `json:"lote"`
	CodigoBarras    string          `gorm:"uniqueIndex;not null" json:"codigo_barras"`

	Grupo *Grupo `gorm:"foreignKey:GrupoID" json:"-"`
}

func (ProductoVenta) TableName() string { return "productos_venta" }
