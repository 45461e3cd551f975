package model

import "fmt"

// TipoItem enumerates the three inventory record kinds. Using a typed enum
// keeps the per-kind dispatch in handlers exhaustive instead of scattering
// string comparisons through the services.
type TipoItem string

const (
	TipoDispositivo     TipoItem = "dispositivo"
	TipoProductoVenta   TipoItem = "producto_venta"
	TipoMaterialGeneral TipoItem = "material_general"
)

// ParseTipoItem converts a URL/form value into a TipoItem.
func ParseTipoItem(s string) (TipoItem, error) {
	switch TipoItem(s) {
	case TipoDispositivo, TipoProductoVenta, TipoMaterialGeneral:
		return TipoItem(s), nil
	}
	return "", fmt.Errorf("tipo de producto desconocido: %q", s)
}

func (t TipoItem) String() string { return string(t) }
