package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/infra"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"github.com/rs/zerolog/log"
)

// longitudCodigo is the fixed length of every issued barcode.
const longitudCodigo = 12

// CodigoService is the identifier registry: it issues globally unique
// 12-digit barcodes backed by the persisted reservation set.
type CodigoService interface {
	// Generar issues a fresh code, retrying on collision, and persists the
	// reservation before returning.
	Generar(ctx context.Context) (string, error)
	// GenerarLote issues cantidad codes and renders their images
	// best-effort.
	GenerarLote(ctx context.Context, cantidad int) ([]string, error)
	// Liberar removes a code from the reservation set.
	Liberar(ctx context.Context, codigo string) error
}

type codigoService struct {
	repo     repository.CodigoBarrasRepository
	renderer *infra.BarcodeRenderer

	// mu serializes check-then-insert so concurrent requests within this
	// process cannot race the reservation set. Cross-process races fall
	// back on the store's own locking.
	mu sync.Mutex
}

func NewCodigoService(repo repository.CodigoBarrasRepository, renderer *infra.BarcodeRenderer) CodigoService {
	return &codigoService{repo: repo, renderer: renderer}
}

func (s *codigoService) Generar(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		codigo := nuevoCandidato()
		existe, err := s.repo.Exists(ctx, codigo)
		if err != nil {
			return "", apierror.FromStore(err)
		}
		if existe {
			continue
		}
		if err := s.repo.Create(ctx, codigo); err != nil {
			return "", apierror.FromStore(err)
		}
		return codigo, nil
	}
}

func (s *codigoService) GenerarLote(ctx context.Context, cantidad int) ([]string, error) {
	if cantidad < 1 {
		cantidad = 1
	}
	codigos := make([]string, 0, cantidad)
	for i := 0; i < cantidad; i++ {
		codigo, err := s.Generar(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := s.renderer.Render(codigo); err != nil {
			log.Warn().Err(err).Str("codigo", codigo).Msg("no se pudo generar la imagen del código")
		}
		codigos = append(codigos, codigo)
	}
	return codigos, nil
}

func (s *codigoService) Liberar(ctx context.Context, codigo string) error {
	if err := s.repo.Delete(ctx, codigo); err != nil {
		return apierror.FromStore(err)
	}
	return nil
}

// nuevoCandidato derives a 12-digit candidate from the current nanosecond
// timestamp. The low digits churn fast enough that collisions are rare; the
// caller's reservation check handles the rest.
func nuevoCandidato() string {
	ns := strconv.FormatInt(time.Now().UnixNano(), 10)
	if len(ns) >= longitudCodigo {
		return ns[len(ns)-longitudCodigo:]
	}
	for len(ns) < longitudCodigo {
		ns = "0" + ns
	}
	return ns
}
