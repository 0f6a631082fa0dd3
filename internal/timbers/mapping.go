package timbers

import "github.com/JaimeStill/superbowl/pkg/repository"

const columns = `t.id, t.version, t.idx, t.geo_region_id, g.code, t.botanic_system_id,
	t.type, t.code, t.name, t.image_name, t.academic_name,
	t.gross_density, t.tensile_strength, t.burst_strength, t.bending_strength,
	t.shear_strength, t.brinell_hardness_one, t.brinell_hardness_two,
	t.tangent_shrinkage, t.radial_shrinkage`

const selectTimbers = `SELECT ` + columns + `
	FROM public.timbers t
	JOIN public.geo_regions g ON g.id = t.geo_region_id`

const orderTimbers = ` ORDER BY g.code ASC, t.idx ASC`

func scanTimber(s repository.Scanner) (Timber, error) {
	var t Timber
	err := s.Scan(
		&t.ID, &t.Version, &t.Index, &t.GeoRegionID, &t.GeoRegionCode, &t.BotanicSystemID,
		&t.Type, &t.Code, &t.Name, &t.ImageName, &t.AcademicName,
		&t.GrossDensity, &t.TensileStrength, &t.BurstStrength, &t.BendingStrength,
		&t.ShearStrength, &t.BrinellHardnessOne, &t.BrinellHardnessTwo,
		&t.TangentShrinkage, &t.RadialShrinkage,
	)
	return t, err
}
