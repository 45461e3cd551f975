package dto

// CrearMaterialGeneralRequest carries the creation form for general material.
type CrearMaterialGeneralRequest struct {
	GrupoID uint   `form:"grupo_id" validate:"required"`
	Nombre  string `form:"nombre_material" validate:"required"`
	Tipo    string `form:"tipo_material" validate:"required"`
	Room    string `form:"room_material"`
	Precio  string `form:"precio_material" validate:"required"`
}

// ActualizarMaterialGeneralRequest is the full-row replacement applied on edit.
type ActualizarMaterialGeneralRequest struct {
	GrupoID uint   `form:"grupo_id" validate:"required"`
	Nombre  string `form:"nombre" validate:"required"`
	Tipo    string `form:"tipo" validate:"required"`
	Room    string `form:"room"`
	Precio  string `form:"precio" validate:"required"`
}
