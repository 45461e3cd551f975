package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/model"
	"github.com/44Loqueinor12345/Inventario/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// coerceDecimal parses a form value into a decimal, producing a validation
// error naming the field on failure.
func coerceDecimal(campo, valor string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(valor)
	if err != nil {
		return decimal.Zero, apierror.Validation(campo,
			fmt.Sprintf(`Error: El campo "%s" debe ser un número válido`, campo))
	}
	return d, nil
}

// coerceFecha parses an optional YYYY-MM-DD form value. Empty input yields
// nil without error.
func coerceFecha(campo, valor string) (*time.Time, error) {
	if valor == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return nil, apierror.Validation(campo,
			fmt.Sprintf(`Error: El campo "%s" debe ser una fecha válida (AAAA-MM-DD)`, campo))
	}
	return &t, nil
}

// resolverGrupo looks up a group by id, mapping a missing row to NotFound.
func resolverGrupo(ctx context.Context, grupos repository.GrupoRepository, id uint) (*model.Grupo, error) {
	g, err := grupos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Error: El grupo indicado no existe")
		}
		return nil, apierror.FromStore(err)
	}
	return g, nil
}
