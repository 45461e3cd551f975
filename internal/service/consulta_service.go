package service

import (
	"context"
	"errors"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"gorm.io/gorm"
)

// ConsultaService resolves barcodes and group names into inventory views.
type ConsultaService interface {
	// BuscarPorCodigo looks a barcode up across the three kinds, in
	// precedence order dispositivo → producto_venta → material_general.
	BuscarPorCodigo(ctx context.Context, codigo string) (*dto.BusquedaResponse, error)
	// ListarPorGrupo returns every record of the named group across the
	// three kinds.
	ListarPorGrupo(ctx context.Context, nombre string) (*dto.InventarioGrupoResponse, error)
}

type consultaService struct {
	grupos       repository.GrupoRepository
	dispositivos repository.DispositivoRepository
	productos    repository.ProductoVentaRepository
	materiales   repository.MaterialGeneralRepository
}

func NewConsultaService(
	grupos repository.GrupoRepository,
	dispositivos repository.DispositivoRepository,
	productos repository.ProductoVentaRepository,
	materiales repository.MaterialGeneralRepository,
) ConsultaService {
	return &consultaService{
		grupos:       grupos,
		dispositivos: dispositivos,
		productos:    productos,
		materiales:   materiales,
	}
}

func (s *consultaService) BuscarPorCodigo(ctx context.Context, codigo string) (*dto.BusquedaResponse, error) {
	if codigo == "" {
		return nil, apierror.Validation("codigo_barras",
			`Error: El campo "codigo_barras" es requerido`)
	}

	if d, err := s.dispositivos.FindByCodigoBarras(ctx, codigo); err == nil {
		return respuestaBusqueda(model.TipoDispositivo, codigo, d.Grupo, &dto.BusquedaResponse{Dispositivo: d}), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.FromStore(err)
	}

	if p, err := s.productos.FindByCodigoBarras(ctx, codigo); err == nil {
		return respuestaBusqueda(model.TipoProductoVenta, codigo, p.Grupo, &dto.BusquedaResponse{Producto: p}), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.FromStore(err)
	}

	if m, err := s.materiales.FindByCodigoBarras(ctx, codigo); err == nil {
		return respuestaBusqueda(model.TipoMaterialGeneral, codigo, m.Grupo, &dto.BusquedaResponse{Material: m}), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.FromStore(err)
	}

	return nil, apierror.NotFound("Producto no encontrado")
}

func (s *consultaService) ListarPorGrupo(ctx context.Context, nombre string) (*dto.InventarioGrupoResponse, error) {
	grupo, err := s.grupos.FindByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Grupo no encontrado")
		}
		return nil, apierror.FromStore(err)
	}

	dispositivos, err := s.dispositivos.ListByGrupoNombre(ctx, nombre)
	if err != nil {
		return nil, apierror.FromStore(err)
	}
	productos, err := s.productos.ListByGrupoNombre(ctx, nombre)
	if err != nil {
		return nil, apierror.FromStore(err)
	}
	materiales, err := s.materiales.ListByGrupoNombre(ctx, nombre)
	if err != nil {
		return nil, apierror.FromStore(err)
	}

	if dispositivos == nil {
		dispositivos = []model.Dispositivo{}
	}
	if productos == nil {
		productos = []model.ProductoVenta{}
	}
	if materiales == nil {
		materiales = []model.MaterialGeneral{}
	}

	return &dto.InventarioGrupoResponse{
		Grupo:           *grupo,
		Dispositivos:    dispositivos,
		ProductosVenta:  productos,
		MaterialGeneral: materiales,
	}, nil
}

func respuestaBusqueda(tipo model.TipoItem, codigo string, grupo *model.Grupo, base *dto.BusquedaResponse) *dto.BusquedaResponse {
	base.Success = true
	base.Tipo = tipo
	base.CodigoBarras = codigo
	if grupo != nil {
		base.GrupoNombre = grupo.Nombre
		base.GrupoID = grupo.ID
	}
	return base
}
