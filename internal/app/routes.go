package app

import (
	"io/fs"
	"os"

	"github.com/JaimeStill/superbowl/internal/botanics"
	"github.com/JaimeStill/superbowl/internal/bowls"
	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/customers"
	"github.com/JaimeStill/superbowl/internal/exhibitions"
	"github.com/JaimeStill/superbowl/internal/georegions"
	"github.com/JaimeStill/superbowl/internal/partners"
	"github.com/JaimeStill/superbowl/internal/roadmaps"
	"github.com/JaimeStill/superbowl/internal/settings"
	"github.com/JaimeStill/superbowl/internal/software"
	"github.com/JaimeStill/superbowl/internal/statuses"
	"github.com/JaimeStill/superbowl/internal/subusers"
	"github.com/JaimeStill/superbowl/internal/timberorigins"
	"github.com/JaimeStill/superbowl/internal/timbers"
	"github.com/JaimeStill/superbowl/pkg/binder"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/web"
)

// Root is the application prefix every route is mirrored under.
const Root = "/superbowl"

// Prefixes are the URL roots of the mirrored table.
var Prefixes = []string{"", Root}

// AssetsController owns the static asset routes.
const AssetsController = "AssetsController"

// BuildRoutes resolves every binding and declares the route table. The
// setup route is added under Root only outside production. files holds
// the embedded static assets.
func BuildRoutes(rt *Runtime, res *binder.Resolver, files fs.FS) (*routes.Table, error) {
	required := append(append([]binder.Capability{}, Services...), BowlController)
	if err := res.ResolveAll(required...); err != nil {
		return nil, err
	}

	deps := rt.FlowDeps()

	pages := NewPages(
		binder.MustGet[roadmaps.System](res, Roadmap),
		binder.MustGet[software.System](res, Software),
		binder.MustGet[settings.System](res, Setting),
		binder.MustGet[partners.System](res, Partner),
		binder.MustGet[subusers.System](res, Setup),
		rt.Sessions,
		rt.Config.Version,
		rt.Logger,
	)

	regions := binder.MustGet[georegions.System](res, GeoRegion)
	botanic := binder.MustGet[botanics.System](res, BotanicSystem)
	timber := binder.MustGet[timbers.System](res, Timber)

	t := routes.NewTable(Prefixes...)
	t.Add(
		pages.Routes(),
		botanics.NewHandler(botanic, deps).Routes(),
		binder.MustGet[*bowls.Handler](res, BowlController).Routes(),
		customers.NewHandler(binder.MustGet[customers.System](res, Customer), deps).Routes(),
		exhibitions.NewHandler(binder.MustGet[exhibitions.System](res, Exhibition), deps).Routes(),
		georegions.NewHandler(regions, rt.Sessions, rt.Logger).Routes(),
		statuses.NewHandler(binder.MustGet[statuses.System](res, Status), deps).Routes(),
		timbers.NewHandler(timber, regions, botanic, deps).Routes(),
		timberorigins.NewHandler(binder.MustGet[timberorigins.System](res, TimberOrigin), timber, deps).Routes(),
		assetRoutes(rt, files),
	)

	switch rt.Config.RuntimeMode() {
	case config.Production:
	case config.Development, config.Test:
		t.AddScoped(Root, pages.SetupRoutes())
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func assetRoutes(rt *Runtime, files fs.FS) routes.Group {
	webjars := web.NewAssets(os.DirFS(rt.Config.Assets.WebjarsDir), nil, rt.Logger)
	static := web.NewAssets(files, rt.Storage, rt.Logger)

	return routes.Group{
		Capability:  AssetsController,
		Tags:        []string{"Assets"},
		Description: "Static assets and uploaded images",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/assets/webjars/{" + web.WildcardName + "...}", Action: "serveWebJars", Handler: webjars.Serve},
			{Method: "GET", Pattern: "/assets/{" + web.WildcardName + "...}", Action: "serveStatic", Handler: static.Serve},
		},
	}
}
