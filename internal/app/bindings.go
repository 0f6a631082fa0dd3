package app

import (
	"github.com/JaimeStill/superbowl/internal/botanics"
	"github.com/JaimeStill/superbowl/internal/bowls"
	"github.com/JaimeStill/superbowl/internal/customers"
	"github.com/JaimeStill/superbowl/internal/exhibitions"
	"github.com/JaimeStill/superbowl/internal/georegions"
	"github.com/JaimeStill/superbowl/internal/manufactures"
	"github.com/JaimeStill/superbowl/internal/partners"
	"github.com/JaimeStill/superbowl/internal/roadmaps"
	"github.com/JaimeStill/superbowl/internal/settings"
	"github.com/JaimeStill/superbowl/internal/software"
	"github.com/JaimeStill/superbowl/internal/statuses"
	"github.com/JaimeStill/superbowl/internal/subusers"
	"github.com/JaimeStill/superbowl/internal/timberorigins"
	"github.com/JaimeStill/superbowl/internal/timbers"
	"github.com/JaimeStill/superbowl/pkg/binder"
)

// Service capabilities.
const (
	BotanicSystem binder.Capability = botanics.Capability
	Bowl          binder.Capability = bowls.Capability
	Customer      binder.Capability = customers.Capability
	Exhibition    binder.Capability = exhibitions.Capability
	GeoRegion     binder.Capability = georegions.Capability
	Manufacture   binder.Capability = "Manufacture"
	Partner       binder.Capability = "Partner"
	Roadmap       binder.Capability = "Roadmap"
	Software      binder.Capability = "Software"
	Status        binder.Capability = statuses.Capability
	Timber        binder.Capability = timbers.Capability
	TimberOrigin  binder.Capability = timberorigins.Capability
	Setting       binder.Capability = "Setting"
	Setup         binder.Capability = "Setup"
)

// BowlController binds the concrete bowl handler used by the route table.
const BowlController binder.Capability = bowls.Controller

// Services lists the service capabilities in binding order.
var Services = []binder.Capability{
	BotanicSystem, Bowl, Customer, Exhibition, GeoRegion, Manufacture, Partner,
	Roadmap, Software, Status, Timber, TimberOrigin, Setting, Setup,
}

// Bind maps every capability to its provider. Providers run once, on
// first resolution, and their instance is shared for the process lifetime.
func Bind(rt *Runtime) (*binder.Binder, error) {
	b := binder.New()

	providers := []struct {
		c binder.Capability
		p binder.Provider
	}{
		{BotanicSystem, func(*binder.Scope) (any, error) {
			return botanics.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Bowl, func(*binder.Scope) (any, error) {
			return bowls.New(rt.Database.Connection(), rt.Logger, rt.Config.Pagination), nil
		}},
		{Customer, func(*binder.Scope) (any, error) {
			return customers.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Exhibition, func(*binder.Scope) (any, error) {
			return exhibitions.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{GeoRegion, func(*binder.Scope) (any, error) {
			return georegions.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Manufacture, func(*binder.Scope) (any, error) {
			return manufactures.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Partner, func(*binder.Scope) (any, error) {
			return partners.New(), nil
		}},
		{Roadmap, func(*binder.Scope) (any, error) {
			return roadmaps.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Software, func(*binder.Scope) (any, error) {
			return software.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Status, func(*binder.Scope) (any, error) {
			return statuses.New(rt.Database.Connection(), rt.Cache, rt.Logger), nil
		}},
		{Timber, func(*binder.Scope) (any, error) {
			return timbers.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{TimberOrigin, func(*binder.Scope) (any, error) {
			return timberorigins.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Setting, func(*binder.Scope) (any, error) {
			return settings.New(rt.Database.Connection(), rt.Logger), nil
		}},
		{Setup, func(*binder.Scope) (any, error) {
			return subusers.New(rt.Database.Connection(), account(rt), rt.Logger), nil
		}},
		{BowlController, func(s *binder.Scope) (any, error) {
			sys, err := binder.Get[bowls.System](s, Bowl)
			if err != nil {
				return nil, err
			}
			lookups, err := bowlLookups(s)
			if err != nil {
				return nil, err
			}
			return bowls.NewHandler(sys, lookups, rt.Storage, rt.FlowDeps(), rt.Config.Pagination), nil
		}},
	}

	for _, entry := range providers {
		if err := b.Bind(entry.c, entry.p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func account(rt *Runtime) subusers.Account {
	return subusers.Account{
		UserID:   rt.Config.Setup.UserID,
		UserName: rt.Config.Setup.UserName,
		Email:    rt.Config.Setup.Email,
		Password: rt.Config.Setup.Password,
	}
}

func bowlLookups(s *binder.Scope) (bowls.Lookups, error) {
	var (
		l   bowls.Lookups
		err error
	)
	if l.Statuses, err = binder.Get[statuses.System](s, Status); err != nil {
		return l, err
	}
	if l.GeoRegions, err = binder.Get[georegions.System](s, GeoRegion); err != nil {
		return l, err
	}
	if l.Manufactures, err = binder.Get[manufactures.System](s, Manufacture); err != nil {
		return l, err
	}
	if l.Timbers, err = binder.Get[timbers.System](s, Timber); err != nil {
		return l, err
	}
	if l.TimberOrigins, err = binder.Get[timberorigins.System](s, TimberOrigin); err != nil {
		return l, err
	}
	if l.Customers, err = binder.Get[customers.System](s, Customer); err != nil {
		return l, err
	}
	if l.Exhibitions, err = binder.Get[exhibitions.System](s, Exhibition); err != nil {
		return l, err
	}
	return l, nil
}
