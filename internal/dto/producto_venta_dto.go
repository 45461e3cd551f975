package dto

// CrearProductoVentaRequest carries the creation form for a sale product.
// The _venta suffixes match the shared creation form, where every kind's
// fields coexist under distinct names.
type CrearProductoVentaRequest struct {
	GrupoID     uint   `form:"grupo_id" validate:"required"`
	Marca       string `form:"marca_venta" validate:"required"`
	Descripcion string `form:"descripcion_venta" validate:"required"`
	Caducidad   string `form:"caducidad_venta"` // YYYY-MM-DD, optional
	Costo       string `form:"costo_venta" validate:"required"`
	Lote        string `form:"lote_venta"`
}

// ActualizarProductoVentaRequest is the full-row replacement applied on edit.
type ActualizarProductoVentaRequest struct {
	GrupoID     uint   `form:"grupo_id" validate:"required"`
	Marca       string `form:"marca" validate:"required"`
	Descripcion string `form:"descripcion" validate:"required"`
	Caducidad   string `form:"caducidad"`
	Costo       string `form:"costo" validate:"required"`
	Lote        string `form:"lote"`
}
