// Package seed genera datos de prueba masivos: proveedores sintéticos y sus
// productos con precios aleatorios coherentes.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con los repositorios de
// proveedor y producto atados a ella. Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(suppliers repository.SupplierRepository, products repository.ProductRepository) error) error
}

// Options parámetros del generador.
type Options struct {
	Suppliers           int
	ProductsPerSupplier int
	BatchSize           int
	Seed                int64 // 0 usa la hora actual
}

// Generator puebla la base en dos fases: primero todos los proveedores en una
// transacción, luego todos los productos en otra.
type Generator struct {
	tx  TxRunner
	log zerolog.Logger
}

// NewGenerator construye el generador.
func NewGenerator(tx TxRunner, log zerolog.Logger) *Generator {
	return &Generator{tx: tx, log: log}
}

// Run ejecuta ambas fases. Los proveedores llevan un prefijo de nombre único
// por corrida (PROV_<timestamp>_) que permite re-leerlos con sus ids reales
// antes de la fase de productos; si la re-lectura no devuelve exactamente los
// proveedores insertados, se aborta sin tocar productos.
func (g *Generator) Run(ctx context.Context, opts Options) error {
	if opts.Suppliers <= 0 || opts.ProductsPerSupplier <= 0 {
		return fmt.Errorf("seed: cantidades inválidas (proveedores=%d, productos=%d)", opts.Suppliers, opts.ProductsPerSupplier)
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 2000
	}
	seedVal := opts.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seedVal))

	prefix := fmt.Sprintf("PROV_%d_", time.Now().Unix())
	start := time.Now()

	// Fase 1: proveedores.
	var created []*entity.Supplier
	err := g.tx.Run(ctx, func(suppliers repository.SupplierRepository, _ repository.ProductRepository) error {
		batch := make([]*entity.Supplier, 0, opts.Suppliers)
		for i := 1; i <= opts.Suppliers; i++ {
			phone := fmt.Sprintf("09%07d", r.Intn(10000000))
			batch = append(batch, &entity.Supplier{
				Name:  fmt.Sprintf("%s%04d", prefix, i),
				Phone: &phone,
			})
		}
		if err := suppliers.CreateBatch(ctx, batch); err != nil {
			return fmt.Errorf("seed: alta de proveedores: %w", err)
		}
		got, err := suppliers.ListByNamePrefix(ctx, prefix)
		if err != nil {
			return fmt.Errorf("seed: re-lectura de proveedores: %w", err)
		}
		if len(got) != opts.Suppliers {
			return fmt.Errorf("seed: re-lectura devolvió %d proveedores, se esperaban %d", len(got), opts.Suppliers)
		}
		created = got
		return nil
	})
	if err != nil {
		return err
	}
	g.log.Info().Int("proveedores", len(created)).Str("prefijo", prefix).Msg("fase 1 completada")

	// Fase 2: productos.
	err = g.tx.Run(ctx, func(_ repository.SupplierRepository, products repository.ProductRepository) error {
		batch := make([]*entity.Product, 0, opts.BatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := products.CreateBatch(ctx, batch); err != nil {
				return fmt.Errorf("seed: alta de productos: %w", err)
			}
			batch = batch[:0]
			return nil
		}
		for i, sup := range created {
			for j := 1; j <= opts.ProductsPerSupplier; j++ {
				purchase := PurchasePrice(r)
				sale := SalePrice(purchase, RandomFactor(r))
				batch = append(batch, &entity.Product{
					SupplierID:    sup.ID,
					Name:          fmt.Sprintf("PROD_%d_%04d", sup.ID, j),
					PurchasePrice: nullDecimal(purchase),
					SalePrice:     nullDecimal(sale),
				})
				if len(batch) >= opts.BatchSize {
					if err := flush(); err != nil {
						return err
					}
				}
			}
			if (i+1)%50 == 0 {
				g.log.Info().Int("proveedores_procesados", i+1).Msg("fase 2 en progreso")
			}
		}
		return flush()
	})
	if err != nil {
		return err
	}

	g.log.Info().
		Int("proveedores", opts.Suppliers).
		Int("productos", opts.Suppliers*opts.ProductsPerSupplier).
		Dur("duracion", time.Since(start)).
		Msg("seed completado")
	return nil
}
