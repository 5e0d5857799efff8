// poblar carga datos de prueba masivos: proveedores sintéticos y sus
// productos con precios aleatorios, en dos fases transaccionales.
package main

import (
	"context"
	"flag"

	"github.com/tu-usuario/almacen-api/internal/application/seed"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func main() {
	var (
		suppliers = flag.Int("proveedores", 1000, "cantidad de proveedores a crear")
		products  = flag.Int("productos-por-proveedor", 1000, "productos por proveedor")
		batchSize = flag.Int("batch-size", 2000, "tamaño del lote de inserción")
		seedVal   = flag.Int64("seed", 0, "semilla aleatoria (0 = hora actual)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	gen := seed.NewGenerator(postgres.NewTxRunner(pool), log.Zerolog())
	err = gen.Run(ctx, seed.Options{
		Suppliers:           *suppliers,
		ProductsPerSupplier: *products,
		BatchSize:           *batchSize,
		Seed:                *seedVal,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos")
	}
}
