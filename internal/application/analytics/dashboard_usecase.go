// Package analytics contiene el caso de uso del dashboard de estadísticas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de GET /dashboard/estadisticas.
//
// Fuente de datos: StatsRepository (consultas read-only). Los conteos de
// pedidos se acotan siempre al usuario autenticado.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardResponse para el usuario autenticado.
//
// Seis consultas en paralelo:
//  1. CountSuppliers                      → cantidad_proveedores
//  2. CountProducts                       → cantidad_productos
//  3. CountOrdersCreated(pendiente)       → cantidad_pedidos_hechos_pendientes
//  4. CountOrdersCreated(completado)      → cantidad_pedidos_hechos_completados
//  5. CountOrdersReceived(pendiente)      → cantidad_pedidos_recibidos_pendientes
//  6. CountOrdersReceived(completado)     → cantidad_pedidos_recibidos_completados
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor *entity.User) (*dto.DashboardResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	type countResult struct {
		n   int
		err error
	}

	suppliersCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)
	createdPendCh := make(chan countResult, 1)
	createdDoneCh := make(chan countResult, 1)
	receivedPendCh := make(chan countResult, 1)
	receivedDoneCh := make(chan countResult, 1)

	go func() {
		n, err := uc.statsRepo.CountSuppliers(ctx)
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrdersCreated(ctx, actor.ID, entity.OrderStatusPending)
		createdPendCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrdersCreated(ctx, actor.ID, entity.OrderStatusCompleted)
		createdDoneCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrdersReceived(ctx, actor.ID, entity.OrderStatusPending)
		receivedPendCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrdersReceived(ctx, actor.ID, entity.OrderStatusCompleted)
		receivedDoneCh <- countResult{n, err}
	}()

	suppliers := <-suppliersCh
	products := <-productsCh
	createdPend := <-createdPendCh
	createdDone := <-createdDoneCh
	receivedPend := <-receivedPendCh
	receivedDone := <-receivedDoneCh

	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de proveedores: %w", suppliers.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}
	if createdPend.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos hechos pendientes: %w", createdPend.err)
	}
	if createdDone.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos hechos completados: %w", createdDone.err)
	}
	if receivedPend.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos recibidos pendientes: %w", receivedPend.err)
	}
	if receivedDone.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos recibidos completados: %w", receivedDone.err)
	}

	return &dto.DashboardResponse{
		Now:               time.Now(),
		UserName:          actor.Name,
		UserBranch:        actor.BranchName,
		Suppliers:         suppliers.n,
		Products:          products.n,
		CreatedPending:    createdPend.n,
		CreatedCompleted:  createdDone.n,
		ReceivedPending:   receivedPend.n,
		ReceivedCompleted: receivedDone.n,
	}, nil
}
