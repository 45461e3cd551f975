package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VPNNoTiene is the sentinel for devices without a VPN assignment. Devices
// with this value carry an empty canal and are exempt from the (vpn, canal)
// uniqueness constraint.
const VPNNoTiene = "No tiene"

// Dispositivo represents a tracked device. No two devices may share the same
// (vpn, canal_vpn) pair unless vpn is VPNNoTiene.
type Dispositivo struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	GrupoID         uint            `gorm:"index;not null" json:"grupo_id"`
	Responsable     string          `gorm:"not null" json:"responsable"`
	Marca           string          `gorm:"not null" json:"marca"`
	VPN             string          `gorm:"column:vpn;not null" json:"vpn"`
	CanalVPN        string          `gorm:"column:canal_vpn" json:"canal_vpn"`
	Room            string          `json:"room"`
	CuentasTiktok   string          `json:"cuentas_tiktok"`
	Pais            string          `json:"pais"`
	AppleID         string          `gorm:"column:apple_id" json:"apple_id"`
	Foto            string          `json:"foto"`
	Costo           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"costo"`
	FechaAgregacion time.Time       `gorm:"not null" json:"fecha_agregacion"`
	Comentarios     string          `json:"comentarios"`
	CodigoBarras    string          `gorm:"uniqueIndex;not null" json:"codigo_barras"`

	Grupo *Grupo `gorm:"foreignKey:GrupoID" json:"-"`
}

func (Dispositivo) TableName() string { return "dispositivos" }
