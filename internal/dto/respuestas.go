package dto

import "github.com/44Loqueinor12345/Inventario/internal/model"

// AltaResponse is returned after a successful creation. BarcodeImage is
// informational: an empty value means the code is valid but its image could
// not be rendered.
type AltaResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CodigoBarras string `json:"codigo_barras"`
	BarcodeImage string `json:"barcode_image"`
	Tipo         string `json:"tipo"`
	Grupo        string `json:"grupo"`
	FotoURL      string `json:"foto_url"`
}

// BusquedaResponse annotates the first record matching a barcode with its
// kind and group. Exactly one of the three record pointers is set.
type BusquedaResponse struct {
	Success      bool                   `json:"success"`
	Tipo         model.TipoItem         `json:"tipo"`
	CodigoBarras string                 `json:"codigo_barras"`
	GrupoNombre  string                 `json:"grupo_nombre"`
	GrupoID      uint                   `json:"grupo_id"`
	Dispositivo  *model.Dispositivo     `json:"dispositivo,omitempty"`
	Producto     *model.ProductoVenta   `json:"producto_venta,omitempty"`
	Material     *model.MaterialGeneral `json:"material_general,omitempty"`
}

// InventarioGrupoResponse lists every record of a group across the three
// kinds. Empty groups yield three empty slices, not an error.
type InventarioGrupoResponse struct {
	Grupo           model.Grupo             `json:"grupo"`
	Dispositivos    []model.Dispositivo     `json:"dispositivos"`
	ProductosVenta  []model.ProductoVenta   `json:"productos_venta"`
	MaterialGeneral []model.MaterialGeneral `json:"material_general"`
}

// CodigosResponse is returned by the batch barcode generation endpoint.
type CodigosResponse struct {
	Success bool     `json:"success"`
	Codigos []string `json:"codigos"`
}
