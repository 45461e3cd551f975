package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/infra"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DispositivoService defines the business logic contract for devices.
type DispositivoService interface {
	Crear(ctx context.Context, req dto.CrearDispositivoRequest, foto *multipart.FileHeader) (*dto.AltaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarDispositivoRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type dispositivoService struct {
	repo        repository.DispositivoRepository
	grupos      repository.GrupoRepository
	codigos     CodigoService
	codigosRepo repository.CodigoBarrasRepository
	renderer    *infra.BarcodeRenderer
	fotos       *infra.FotoStore
}

func NewDispositivoService(
	repo repository.DispositivoRepository,
	grupos repository.GrupoRepository,
	codigos CodigoService,
	codigosRepo repository.CodigoBarrasRepository,
	renderer *infra.BarcodeRenderer,
	fotos *infra.FotoStore,
) DispositivoService {
	return &dispositivoService{
		repo:        repo,
		grupos:      grupos,
		codigos:     codigos,
		codigosRepo: codigosRepo,
		renderer:    renderer,
		fotos:       fotos,
	}
}

func (s *dispositivoService) Crear(ctx context.Context, req dto.CrearDispositivoRequest, foto *multipart.FileHeader) (*dto.AltaResponse, error) {
	// canal_vpn becomes required once the device has a VPN assigned.
	if req.VPN != model.VPNNoTiene && req.CanalVPN == "" {
		return nil, apierror.Validation("canal_vpn",
			`Error: El campo "canal_vpn" es requerido para dispositivos`)
	}
	costo, err := coerceDecimal("costo", req.Costo)
	if err != nil {
		return nil, err
	}

	// Devices without VPN store an empty canal and skip the constraint.
	canal := req.CanalVPN
	if req.VPN == model.VPNNoTiene {
		canal = ""
	}
	if req.VPN != model.VPNNoTiene && canal != "" {
		if err := s.verificarVPNCanal(ctx, req.VPN, canal, 0); err != nil {
			return nil, err
		}
	}

	grupo, err := resolverGrupo(ctx, s.grupos, req.GrupoID)
	if err != nil {
		return nil, err
	}

	codigo, err := s.codigos.Generar(ctx)
	if err != nil {
		return nil, err
	}

	// Photo handling degrades to no-photo: a bad upload never aborts the alta.
	fotoURL := ""
	if foto != nil && foto.Filename != "" {
		url, err := s.fotos.Guardar(foto)
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar la foto del dispositivo")
		} else {
			fotoURL = url
		}
	}

	d := &model.Dispositivo{
		GrupoID:         grupo.ID,
		Responsable:     req.Responsable,
		Marca:           req.Marca,
		VPN:             req.VPN,
		CanalVPN:        canal,
		Room:            req.Room,
		CuentasTiktok:   req.CuentasTiktok,
		Pais:            req.Pais,
		AppleID:         req.AppleID,
		Foto:            fotoURL,
		Costo:           costo,
		FechaAgregacion: time.Now(),
		Comentarios:     req.Comentarios,
		CodigoBarras:    codigo,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apierror.FromStore(err)
	}

	// The image is informational only — a render failure leaves the code valid.
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
		Tipo:         model.TipoDispositivo.String(),
		Grupo:        grupo.Nombre,
		FotoURL:      fotoURL,
	}, nil
}

func (s *dispositivoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarDispositivoRequest) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Dispositivo no encontrado")
		}
		return apierror.FromStore(err)
	}

	costo, err := coerceDecimal("costo", req.Costo)
	if err != nil {
		return err
	}

	canal := req.CanalVPN
	if req.VPN == model.VPNNoTiene {
		canal = ""
	}
	// Re-check the pair excluding this record, so keeping the current
	// assignment always succeeds.
	if req.VPN != model.VPNNoTiene && canal != "" {
		if err := s.verificarVPNCanal(ctx, req.VPN, canal, id); err != nil {
			return err
		}
	}

	if _, err := resolverGrupo(ctx, s.grupos, req.GrupoID); err != nil {
		return err
	}

	d.GrupoID = req.GrupoID
	d.Responsable = req.Responsable
	d.Marca = req.Marca
	d.VPN = req.VPN
	d.CanalVPN = canal
	d.Room = req.Room
	d.CuentasTiktok = req.CuentasTiktok
	d.Pais = req.Pais
	d.AppleID = req.AppleID
	d.Foto = req.Foto
	d.Costo = costo
	d.Comentarios = req.Comentarios

	if err := s.repo.Update(ctx, d); err != nil {
		return apierror.FromStore(err)
	}
	return nil
}

func (s *dispositivoService) Eliminar(ctx context.Context, id uint) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Error: Dispositivo no encontrado")
		}
		return apierror.FromStore(err)
	}

	// Artifact cleanup runs before the row is cleared. Missing files are
	// tolerated so the delete stays idempotent.
	if err := s.renderer.Remove(d.CodigoBarras); err != nil {
		log.Warn().Err(err).Str("codigo", d.CodigoBarras).Msg("no se pudo eliminar la imagen del código")
	}
	if d.Foto != "" {
		if err := s.fotos.Eliminar(d.Foto); err != nil {
			log.Warn().Err(err).Str("foto", d.Foto).Msg("no se pudo eliminar la foto")
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.codigosRepo.DeleteTx(tx, d.CodigoBarras); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.FromStore(txErr)
	}
	return nil
}

// verificarVPNCanal rejects a (vpn, canal) pair already held by another device.
func (s *dispositivoService) verificarVPNCanal(ctx context.Context, vpn, canal string, excludeID uint) error {
	existe, err := s.repo.ExistsVPNCanal(ctx, vpn, canal, excludeID)
	if err != nil {
		return apierror.FromStore(err)
	}
	if existe {
		return apierror.Constraint(fmt.Sprintf(
			`Error: La VPN "%s" con el canal "%s" ya está en uso. Por favor use una combinación diferente.`,
			vpn, canal))
	}
	return nil
}
