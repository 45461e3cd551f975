package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialGeneral represents general material (furniture, consumables, etc.).
// Tipo is the material category, not the item kind.
type MaterialGeneral struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Nombre          string          `gorm:"not null" json:"nombre"`
	Tipo            string          `gorm:"not null" json:"tipo"`
	GrupoID         uint            `gorm:"index;not null" json:"grupo_id"`
	Room            string          `json:"room"`
	FechaAgregacion time.Time       `gorm:"not null" json:"fecha_agregacion"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	CodigoBarras    string          `gorm:"uniqueIndex;not null" json:"codigo_barras"`

	Grupo *Grupo `gorm:"foreignKey:GrupoID" json:"-"`
}

func (MaterialGeneral) TableName() string { return "material_general" }
