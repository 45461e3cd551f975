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

// MaterialGeneralService defines the business logic contract for general
// material.
type MaterialGeneralService interface {
	Crear(ctx context.Context, req dto.CrearMaterialGeneralRequest) (*dto.AltaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarMaterialGeneralRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type materialGeneralService struct {
	repo        repository.MaterialGeneralRepository
	grupos      repository.GrupoRepository
	codigos     CodigoService
	codigosRepo repository.CodigoBarrasRepository
	renderer    *infra.BarcodeRenderer
}

func NewMaterialGeneralService(
	repo repository.MaterialGeneralRepository,
	grupos repository.GrupoRepository,
	codigos CodigoService,
	codigosRepo repository.CodigoBarrasRepository,
	renderer *infra.BarcodeRenderer,
) MaterialGeneralService {
	return &materialGeneralService{
		repo:        repo,
		grupos:      grupos,
		codigos:     codigos,
		codigosRepo: codigosRepo,
		renderer:    renderer,
	}
}

func (s *materialGeneralService) Crear(ctx context.Context, req dto.CrearMaterialGeneralRequest) (*dto.AltaResponse, error) {
	precio, err := coerceDecimal("precio_material", req.Precio)
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

	m := &model.MaterialGeneral{
		Nombre:          req.Nombre,
		Tipo:            req.Tipo,
		GrupoID:         grupo.ID,
		Room:            req.Room,
		FechaAgregacion: time.Now(),
		Precio:          precio,
		CodigoBarras:    codigo,
	}
	if err := s.repo.Create(ctx, m); err != nil {
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
		Tipo:         model.TipoMaterialGeneral.String(),
		Grupo:        grupo.Nombre,
	}, nil
}

func (s *materialGeneralService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMaterialGeneralRequest) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Material no encontrado")
		}
		return apierror.FromStore(err)
	}

	precio, err := coerceDecimal("precio", req.Precio)
	if err != nil {
		return err
	}
	if _, err := resolverGrupo(ctx, s.grupos, req.GrupoID); err != nil {
		return err
	}

	m.GrupoID = req.GrupoID
	m.Nombre = req.Nombre
	m.Tipo = req.Tipo
	m.Room = req.Room
	m.Precio = precio

	if err := s.repo.Update(ctx, m); err != nil {
		return apierror.FromStore(err)
	}
	return nil
}

func (s *materialGeneralService) Eliminar(ctx context.Context, id uint) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Material no encontrado")
		}
		return apierror.FromStore(err)
	}

	if err := s.renderer.Remove(m.CodigoBarras); err != nil {
		log.Warn().Err(err).Str("codigo", m.CodigoBarras).Msg("no se pudo eliminar la imagen del código")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.codigosRepo.DeleteTx(tx, m.CodigoBarras); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.FromStore(txErr)
	}
	return nil
}
