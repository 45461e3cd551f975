package service

import (
	"context"
	"errors"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/infra"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductoVentaService defines the business logic contract for sale products.
type ProductoVentaService interface {
	Crear(ctx context.Context, req dto.CrearProductoVentaRequest) (*dto.AltaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoVentaRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type productoVentaService struct {
	repo        repository.ProductoVentaRepository
	grupos      repository.GrupoRepository
	codigos     CodigoService
	codigosRepo repository.CodigoBarrasRepository
	renderer    *infra.BarcodeRenderer
}

func NewProductoVentaService(
	repo repository.ProductoVentaRepository,
	grupos repository.GrupoRepository,
	codigos CodigoService,
	codigosRepo repository.CodigoBarrasRepository,
	renderer *infra.BarcodeRenderer,
) ProductoVentaService {
	return &productoVentaService{
		repo:        repo,
		grupos:      grupos,
		codigos:     codigos,
		codigosRepo: codigosRepo,
		renderer:    renderer,
	}
}

func (s *productoVentaService) Crear(ctx context.Context, req dto.CrearProductoVentaRequest) (*dto.AltaResponse, error) {
	costo, err := coerceDecimal("costo_venta", req.Costo)
	if err != nil {
		return nil, err
	}
	caducidad, err := coerceFecha("caducidad_venta", req.Caducidad)
	if err != nil {
		return nil, err
	}

	grupo, err := resolverGrupo(ctx, s.grupos, req.GrupoID)
	if err != nil {
		return nil, err
	}

	codigo, err := s.codigos.Generar(ctx)
	if err != nil {
		return nil, err
	}

	p := &model.ProductoVenta{
		GrupoID:         grupo.ID,
		Marca:           req.Marca,
		Descripcion:     req.Descripcion,
		Caducidad:       caducidad,
		FechaAgregacion: time.Now(),
		Costo:           costo,
		Lote:            req.Lote,
		CodigoBarras:    codigo,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.FromStore(err)
	}

	imagen, err := s.renderer.Render(codigo)
	if err != nil {
		log.Warn().Err(err).Str("codigo", codigo).Msg("no se pudo generar la imagen del código")
		imagen = ""
	}

	return &dto.AltaResponse{
		Success:      true,
		Message:      "Producto agregado correctamente",
		CodigoBarras: codigo,
		BarcodeImage: imagen,
		Tipo:         model.TipoProductoVenta.String(),
		Grupo:        grupo.Nombre,
	}, nil
}

func (s *productoVentaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoVentaRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Producto de venta no encontrado")
		}
		return apierror.FromStore(err)
	}

	costo, err := coerceDecimal("costo", req.Costo)
	if err != nil {
		return err
	}
	caducidad, err := coerceFecha("caducidad", req.Caducidad)
	if err != nil {
		return err
	}
	if _, err := resolverGrupo(ctx, s.grupos, req.GrupoID); err != nil {
		return err
	}

	p.GrupoID = req.GrupoID
	p.Marca = req.Marca
	p.Descripcion = req.Descripcion
	p.Caducidad = caducidad
	p.Costo = costo
	p.Lote = req.Lote

	if err := s.repo.Update(ctx, p); err != nil {
		return apierror.FromStore(err)
	}
	return nil
}

func (s *productoVentaService) Eliminar(ctx context.Context, id uint) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Producto de venta no encontrado")
		}
		return apierror.FromStore(err)
	}

	if err := s.renderer.Remove(p.CodigoBarras); err != nil {
		log.Warn().Err(err).Str("codigo", p.CodigoBarras).Msg("no se pudo eliminar la imagen del código")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.codigosRepo.DeleteTx(tx, p.CodigoBarras); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.FromStore(txErr)
	}
	return nil
}
