package timbers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "timbers"),
	}
}

func (r *repo) List(ctx context.Context) ([]Timber, error) {
	list, err := repository.QueryMany(ctx, r.db, selectTimbers+orderTimbers, nil, scanTimber)
	if err != nil {
		return nil, fmt.Errorf("query timbers: %w", err)
	}
	return list, nil
}

func (r *repo) ListByGeoRegion(ctx context.Context, geoRegionCode string) ([]Timber, error) {
	q := selectTimbers + ` WHERE g.code = $1` + orderTimbers
	list, err := repository.QueryMany(ctx, r.db, q, []any{geoRegionCode}, scanTimber)
	if err != nil {
		return nil, fmt.Errorf("query timbers of %s: %w", geoRegionCode, err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Timber, error) {
	t, err := repository.QueryOne(ctx, r.db, selectTimbers+` WHERE t.id = $1`, []any{id}, scanTimber)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) FindByCode(ctx context.Context, code string) (*Timber, error) {
	t, err := repository.QueryOne(ctx, r.db, selectTimbers+` WHERE t.code = $1`, []any{code}, scanTimber)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) MaxIndex(ctx context.Context, geoRegionID int64) (int, error) {
	q := `SELECT COALESCE(MAX(idx), 0) FROM public.timbers WHERE geo_region_id = $1`
	n, err := repository.QueryScalar[int](ctx, r.db, q, geoRegionID)
	if err != nil {
		return 0, fmt.Errorf("max timber index: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Timber, error) {
	insert := `
		INSERT INTO timbers (
			version, idx, geo_region_id, botanic_system_id,
			type, code, name, image_name, academic_name,
			gross_density, tensile_strength, burst_strength, bending_strength,
			shear_strength, brinell_hardness_one, brinell_hardness_two,
			tangent_shrinkage, radial_shrinkage
		)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	p := cmd.Properties
	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		return repository.QueryScalar[int64](ctx, tx, insert,
			cmd.Index, cmd.GeoRegionID, cmd.BotanicSystemID,
			p.Type, p.Code, p.Name, p.ImageName, p.AcademicName,
			p.GrossDensity, p.TensileStrength, p.BurstStrength, p.BendingStrength,
			p.ShearStrength, p.BrinellHardnessOne, p.BrinellHardnessTwo,
			p.TangentShrinkage, p.RadialShrinkage,
		)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("timber registered", "id", id, "code", p.Code)
	return r.Find(ctx, id)
}
