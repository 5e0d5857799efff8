// crearadmin crea (o promueve) un usuario admin_general desde la línea de
// comandos. Si el usuario ya existe se actualiza su contraseña y rol, y se
// invalida su token de sesión.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func main() {
	var (
		name     = flag.String("nombre", "", "nombre del usuario admin (requerido)")
		password = flag.String("contrasena", "", "contraseña del usuario (requerido)")
		branch   = flag.String("sucursal", "Central", "nombre de sucursal")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *name == "" || *password == "" {
		log.Fatal().Msg("--nombre y --contrasena son requeridos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByName(ctx, *name)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}

	if existing == nil {
		user := &entity.User{
			Name:         *name,
			PasswordHash: string(hash),
			BranchName:   *branch,
			Role:         entity.RoleAdminGeneral,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Int64("id", user.ID).Str("nombre", user.Name).Msg("admin creado")
		return
	}

	existing.PasswordHash = string(hash)
	existing.BranchName = *branch
	existing.Role = entity.RoleAdminGeneral
	if err := users.Update(ctx, existing); err != nil {
		log.Fatal().Err(err).Msg("actualizar admin")
	}
	if err := users.UpdateToken(ctx, existing.ID, nil); err != nil {
		log.Fatal().Err(err).Msg("invalidar token")
	}
	log.Info().Int64("id", existing.ID).Str("nombre", existing.Name).Msg("admin actualizado")
}
