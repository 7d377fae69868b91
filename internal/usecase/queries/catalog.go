package queries

import (
	"context"

	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
	ListPackages(ctx context.Context, serviceID uuid.UUID) ([]*PackageView, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type CatalogReadStore interface {
	FindServices(ctx context.Context) ([]*ServiceView, error)
	FindServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
	FindPackagesByService(ctx context.Context, serviceID uuid.UUID) ([]*PackageView, error)
	FindPackageByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.store.FindServices(ctx)
}

func (q *catalogQueriesImpl) GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error) {
	view, err := q.store.FindServiceBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context, serviceID uuid.UUID) ([]*PackageView, error) {
	return q.store.FindPackagesByService(ctx, serviceID)
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	view, err := q.store.FindPackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPackageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
