package model

// Grupo is an organizational scope (department); every inventory record
// belongs to exactly one.
type Grupo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"uniqueIndex;not null" json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Grupo) TableName() string { return "grupos" }

// GruposSemilla is the fixed seed set inserted on first startup.
var GruposSemilla = []Grupo{
	{Nombre: "EC", Descripcion: "Grupo EC"},
	{Nombre: "GL", Descripcion: "Grupo GL"},
	{Nombre: "RH", Descripcion: "Grupo RH"},
	{Nombre: "PCG", Descripcion: "Grupo PCG"},
	{Nombre: "ALMACEN", Descripcion: "Grupo ALMACEN"},
}
