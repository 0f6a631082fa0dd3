package bowls

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "bowl_views", "b").
	Project("id", "ID").
	Project("version", "Version").
	Project("idx", "Index").
	Project("ordinal", "Ordinal").
	Project("manufacture_id", "ManufactureID").
	Project("year", "Year").
	Project("status_id", "StatusID").
	Project("status_code", "StatusCode").
	Project("timber_id", "TimberID").
	Project("timber_code", "TimberCode").
	Project("timber_name", "TimberName").
	Project("geo_region_id", "GeoRegionID").
	Project("geo_region_code", "GeoRegionCode").
	Project("timber_origin_id", "TimberOriginID").
	Project("customer_id", "CustomerID").
	Project("exhibition_id", "ExhibitionID").
	Project("image_name", "ImageName").
	Project("price", "Price").
	Project("sales_price", "SalesPrice").
	Project("sales_location", "SalesLocation").
	Project("sales_date", "SalesDate").
	Project("comment", "Comment").
	Project("sold", "Sold")

var defaultSort = query.SortField{Field: "Ordinal"}

func scanBowl(s repository.Scanner) (Bowl, error) {
	var (
		b          Bowl
		salesPrice decimal.NullDecimal
	)
	err := s.Scan(
		&b.ID, &b.Version, &b.Index, &b.Ordinal,
		&b.ManufactureID, &b.Year,
		&b.StatusID, &b.StatusCode,
		&b.TimberID, &b.TimberCode, &b.TimberName,
		&b.GeoRegionID, &b.GeoRegionCode,
		&b.TimberOriginID, &b.CustomerID, &b.ExhibitionID,
		&b.ImageName, &b.Price, &salesPrice,
		&b.SalesLocation, &b.SalesDate, &b.Comment, &b.Sold,
	)
	if salesPrice.Valid {
		b.SalesPrice = &salesPrice.Decimal
	}
	return b, err
}

var stepProjection = query.
	NewProjectionMap("public", "bowl_mod_steps", "ms").
	Project("id", "ID").
	Project("idx", "Index").
	Project("code", "Code").
	Project("name", "Name").
	Project("comment", "Comment")

func scanModStep(s repository.Scanner) (ModStep, error) {
	var m ModStep
	err := s.Scan(&m.ID, &m.Index, &m.Code, &m.Name, &m.Comment)
	return m, err
}

const selectMods = `
	SELECT m.id, m.version, m.bowl_id, m.bowl_mod_step_id, ms.code, m.mod_date,
		m.diameter, m.height, m.wallthickness_min, m.wallthickness_max,
		m.granulation, m.tap, m.recess, m.surface, m.comment
	FROM public.bowl_mods m
	JOIN public.bowl_mod_steps ms ON ms.id = m.bowl_mod_step_id`

func scanMod(s repository.Scanner) (Mod, error) {
	var m Mod
	err := s.Scan(
		&m.ID, &m.Version, &m.BowlID, &m.StepID, &m.StepCode, &m.Date,
		&m.Diameter, &m.Height, &m.WallthicknessMin, &m.WallthicknessMax,
		&m.Granulation, &m.Tap, &m.Recess, &m.Surface, &m.Comment,
	)
	m.Items = []ModItem{}
	return m, err
}

const modItemColumns = `id, version, bowl_mod_id, text, item_date, weight, moisture`

func scanModItem(s repository.Scanner) (ModItem, error) {
	var i ModItem
	err := s.Scan(&i.ID, &i.Version, &i.ModID, &i.Text, &i.Date, &i.Weight, &i.Moisture)
	return i, err
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
