package dto

// CrearDispositivoRequest carries the creation form for a device. Numeric
// fields arrive as strings and are coerced to decimal by the service.
// canal_vpn is required only when vpn is not "No tiene"; the service enforces
// that because the condition depends on another field's value.
type CrearDispositivoRequest struct {
	GrupoID       uint   `form:"grupo_id" validate:"required"`
	Responsable   string `form:"responsable" validate:"required"`
	Marca         string `form:"marca" validate:"required"`
	VPN           string `form:"vpn" validate:"required"`
	CanalVPN      string `form:"canal_vpn"`
	Room          string `form:"room" validate:"required"`
	CuentasTiktok string `form:"cuentas_tiktok"`
	Pais          string `form:"pais" validate:"required"`
	AppleID       string `form:"apple_id"`
	Costo         string `form:"costo" validate:"required"`
	Comentarios   string `form:"comentarios"`
}

// ActualizarDispositivoRequest is the full-row replacement applied on edit.
// Group reassignment is permitted.
type ActualizarDispositivoRequest struct {
	GrupoID       uint   `form:"grupo_id" validate:"required"`
	Responsable   string `form:"responsable" validate:"required"`
	Marca         string `form:"marca" validate:"required"`
	VPN           string `form:"vpn" validate:"required"`
	CanalVPN      string `form:"canal_vpn"`
	Room          string `form:"room" validate:"required"`
	CuentasTiktok string `form:"cuentas_tiktok"`
	Pais          string `form:"pais" validate:"required"`
	AppleID       string `form:"apple_id"`
	Foto          string `form:"foto"`
	Costo         string `form:"costo" validate:"required"`
	Comentarios   string `form:"comentarios"`
}
