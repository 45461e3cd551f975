package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Export filter values. "todos" disables the corresponding filter.
const (
	FiltroTodos           = "todos"
	FiltroDispositivos    = "dispositivos"
	FiltroProductosVenta  = "productos_venta"
	FiltroMaterialGeneral = "material_general"
)

// Sheet names, one per record kind.
const (
	hojaDispositivos    = "Dispositivos"
	hojaProductosVenta  = "Productos de Venta"
	hojaMaterialGeneral = "Material General"
)

// ExportService assembles filtered inventory views into a multi-sheet
// spreadsheet, one sheet per included kind, every stored column plus the
// resolved group name.
type ExportService interface {
	Exportar(ctx context.Context, grupo, tipo string) (*excelize.File, string, error)
}

type exportService struct {
	grupos       repository.GrupoRepository
	dispositivos repository.DispositivoRepository
	productos    repository.ProductoVentaRepository
	materiales   repository.MaterialGeneralRepository
}

func NewExportService(
	grupos repository.GrupoRepository,
	dispositivos repository.DispositivoRepository,
	productos repository.ProductoVentaRepository,
	materiales repository.MaterialGeneralRepository,
) ExportService {
	return &exportService{
		grupos:       grupos,
		dispositivos: dispositivos,
		productos:    productos,
		materiales:   materiales,
	}
}

func (s *exportService) Exportar(ctx context.Context, grupo, tipo string) (*excelize.File, string, error) {
	switch tipo {
	case FiltroTodos, FiltroDispositivos, FiltroProductosVenta, FiltroMaterialGeneral:
	default:
		return nil, "", apierror.Validation("tipo", fmt.Sprintf("Error: Tipo de exportación desconocido: %q", tipo))
	}

	if grupo != FiltroTodos {
		if _, err := s.grupos.FindByNombre(ctx, grupo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", apierror.NotFound("Grupo no encontrado")
			}
			return nil, "", apierror.FromStore(err)
		}
	}

	f := excelize.NewFile()
	var hojas []string

	if tipo == FiltroTodos || tipo == FiltroDispositivos {
		dispositivos, err := s.listarDispositivos(ctx, grupo)
		if err != nil {
			return nil, "", err
		}
		if err := escribirHojaDispositivos(f, dispositivos); err != nil {
			return nil, "", apierror.Store("Error generando exportación: " + err.Error())
		}
		hojas = append(hojas, hojaDispositivos)
	}

	if tipo == FiltroTodos || tipo == FiltroProductosVenta {
		productos, err := s.listarProductos(ctx, grupo)
		if err != nil {
			return nil, "", err
		}
		if err := escribirHojaProductos(f, productos); err != nil {
			return nil, "", apierror.Store("Error generando exportación: " + err.Error())
		}
		hojas = append(hojas, hojaProductosVenta)
	}

	if tipo == FiltroTodos || tipo == FiltroMaterialGeneral {
		materiales, err := s.listarMateriales(ctx, grupo)
		if err != nil {
			return nil, "", err
		}
		if err := escribirHojaMateriales(f, materiales); err != nil {
			return nil, "", apierror.Store("Error generando exportación: " + err.Error())
		}
		hojas = append(hojas, hojaMaterialGeneral)
	}

	// Drop the default sheet and activate the first real one.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", apierror.Store("Error generando exportación: " + err.Error())
	}
	if idx, err := f.GetSheetIndex(hojas[0]); err == nil {
		f.SetActiveSheet(idx)
	}

	nombre := "inventario_completo.xlsx"
	if grupo != FiltroTodos {
		nombre = fmt.Sprintf("inventario_%s.xlsx", grupo)
	}
	return f, nombre, nil
}

func (s *exportService) listarDispositivos(ctx context.Context, grupo string) ([]model.Dispositivo, error) {
	if grupo == FiltroTodos {
		d, err := s.dispositivos.List(ctx)
		if err != nil {
			return nil, apierror.FromStore(err)
		}
		return d, nil
	}
	d, err := s.dispositivos.ListByGrupoNombre(ctx, grupo)
	if err != nil {
		return nil, apierror.FromStore(err)
	}
	return d, nil
}

func (s *exportService) listarProductos(ctx context.Context, grupo string) ([]model.ProductoVenta, error) {
	if grupo == FiltroTodos {
		p, err := s.productos.List(ctx)
		if err != nil {
			return nil, apierror.FromStore(err)
		}
		return p, nil
	}
	p, err := s.productos.ListByGrupoNombre(ctx, grupo)
	if err != nil {
		return nil, apierror.FromStore(err)
	}
	return p, nil
}

func (s *exportService) listarMateriales(ctx context.Context, grupo string) ([]model.MaterialGeneral, error) {
	if grupo == FiltroTodos {
		m, err := s.materiales.List(ctx)
		if err != nil {
			return nil, apierror.FromStore(err)
		}
		return m, nil
	}
	m, err := s.materiales.ListByGrupoNombre(ctx, grupo)
	if err != nil {
		return nil, apierror.FromStore(err)
	}
	return m, nil
}

func escribirHojaDispositivos(f *excelize.File, dispositivos []model.Dispositivo) error {
	if _, err := f.NewSheet(hojaDispositivos); err != nil {
		return err
	}
	cabecera := []interface{}{
		"id", "grupo_id", "responsable", "marca", "vpn", "canal_vpn", "room",
		"cuentas_tiktok", "pais", "apple_id", "foto", "costo",
		"fecha_agregacion", "comentarios", "codigo_barras", "grupo_nombre",
	}
	if err := f.SetSheetRow(hojaDispositivos, "A1", &cabecera); err != nil {
		return err
	}
	for i, d := range dispositivos {
		fila := []interface{}{
			d.ID, d.GrupoID, d.Responsable, d.Marca, d.VPN, d.CanalVPN, d.Room,
			d.CuentasTiktok, d.Pais, d.AppleID, d.Foto, d.Costo.String(),
			formatearFecha(d.FechaAgregacion), d.Comentarios, d.CodigoBarras,
			nombreGrupo(d.Grupo),
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hojaDispositivos, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirHojaProductos(f *excelize.File, productos []model.ProductoVenta) error {
	if _, err := f.NewSheet(hojaProductosVenta); err != nil {
		return err
	}
	cabecera := []interface{}{
		"id", "grupo_id", "marca", "descripcion", "caducidad",
		"fecha_agregacion", "costo", "lote", "codigo_barras", "grupo_nombre",
	}
	if err := f.SetSheetRow(hojaProductosVenta, "A1", &cabecera); err != nil {
		return err
	}
	for i, p := range productos {
		caducidad := ""
		if p.Caducidad != nil {
			caducidad = formatearFecha(*p.Caducidad)
		}
		fila := []interface{}{
			p.ID, p.GrupoID, p.Marca, p.Descripcion, caducidad,
			formatearFecha(p.FechaAgregacion), p.Costo.String(), p.Lote,
			p.CodigoBarras, nombreGrupo(p.Grupo),
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hojaProductosVenta, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirHojaMateriales(f *excelize.File, materiales []model.MaterialGeneral) error {
	if _, err := f.NewSheet(hojaMaterialGeneral); err != nil {
		return err
	}
	cabecera := []interface{}{
		"id", "nombre", "tipo", "grupo_id", "room", "fecha_agregacion",
		"precio", "codigo_barras", "grupo_nombre",
	}
	if err := f.SetSheetRow(hojaMaterialGeneral, "A1", &cabecera); err != nil {
		return err
	}
	for i, m := range materiales {
		fila := []interface{}{
			m.ID, m.Nombre, m.Tipo, m.GrupoID, m.Room,
			formatearFecha(m.FechaAgregacion), m.Precio.String(),
			m.CodigoBarras, nombreGrupo(m.Grupo),
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hojaMaterialGeneral, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func formatearFecha(t time.Time) string { return t.Format("2006-01-02") }

func nombreGrupo(g *model.Grupo) string {
	if g == nil {
		return ""
	}
	return g.Nombre
}
