package bowls

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

func (r *repo) ListModSteps(ctx context.Context) ([]ModStep, error) {
	q, args := query.NewBuilder(stepProjection, query.SortField{Field: "Index"}).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanModStep)
	if err != nil {
		return nil, fmt.Errorf("query modification steps: %w", err)
	}
	return list, nil
}

func (r *repo) FindModStep(ctx context.Context, id int64) (*ModStep, error) {
	q, args := query.NewBuilder(stepProjection, query.SortField{Field: "Index"}).BuildSingle("ID", id)
	m, err := repository.QueryOne(ctx, r.db, q, args, scanModStep)
	if err != nil {
		return nil, repository.MapError(err, ErrModStepNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) ListMods(ctx context.Context, bowlID int64) ([]Mod, error) {
	mods, err := repository.QueryMany(ctx, r.db,
		selectMods+` WHERE m.bowl_id = $1 ORDER BY m.mod_date, m.id`,
		[]any{bowlID}, scanMod,
	)
	if err != nil {
		return nil, fmt.Errorf("query modifications of bowl %d: %w", bowlID, err)
	}
	if len(mods) == 0 {
		return mods, nil
	}

	items, err := repository.QueryMany(ctx, r.db, `
		SELECT `+modItemColumns+`
		FROM public.bowl_mod_items
		WHERE bowl_mod_id IN (SELECT id FROM public.bowl_mods WHERE bowl_id = $1)
		ORDER BY item_date, id`,
		[]any{bowlID}, scanModItem,
	)
	if err != nil {
		return nil, fmt.Errorf("query modification items of bowl %d: %w", bowlID, err)
	}

	byMod := make(map[int64]int, len(mods))
	for i, m := range mods {
		byMod[m.ID] = i
	}
	for _, item := range items {
		if i, ok := byMod[item.ModID]; ok {
			mods[i].Items = append(mods[i].Items, item)
		}
	}
	return mods, nil
}

func (r *repo) FindMod(ctx context.Context, id int64) (*Mod, error) {
	m, err := repository.QueryOne(ctx, r.db, selectMods+` WHERE m.id = $1`, []any{id}, scanMod)
	if err != nil {
		return nil, repository.MapError(err, ErrModNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) RegisterMod(ctx context.Context, cmd ModCommand) (*Mod, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO bowl_mods (
			version, bowl_id, bowl_mod_step_id, mod_date, diameter, height,
			wallthickness_min, wallthickness_max, granulation, tap, recess, surface, comment
		)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		return repository.QueryScalar[int64](ctx, tx, insert,
			cmd.BowlID, cmd.StepID, cmd.Date, cmd.Diameter, cmd.Height,
			cmd.WallthicknessMin, cmd.WallthicknessMax, cmd.Granulation, cmd.Tap, cmd.Recess,
			cmd.Surface, cmd.Comment,
		)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl modification registered", "id", id, "bowl_id", cmd.BowlID, "step_id", cmd.StepID)
	return r.FindMod(ctx, id)
}

func (r *repo) RegisterModItem(ctx context.Context, cmd ModItemCommand) (*ModItem, error) {
	insert := `
		INSERT INTO bowl_mod_items (version, bowl_mod_id, text, item_date, weight, moisture)
		VALUES (0, $1, $2, $3, $4, $5)
		RETURNING ` + modItemColumns

	item, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ModItem, error) {
		return repository.QueryOne(ctx, tx, insert,
			[]any{cmd.ModID, cmd.Text, cmd.Date, cmd.Weight, cmd.Moisture},
			scanModItem,
		)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl modification item registered", "id", item.ID, "mod_id", item.ModID)
	return &item, nil
}
