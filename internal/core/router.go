package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/beetlebot/flyguide/internal/config"
)

// Router picks the one provider a pipeline run talks to, based on the
// configured mode and which live providers have credentials.
type Router struct {
	cfg       *config.Config
	providers []Provider
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{cfg: cfg}
}

func (r *Router) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Active returns the provider for the current mode. In hybrid mode a live
// provider with credentials wins, otherwise the mock provider answers. Live
// mode with no credentials is a missing-credential error.
func (r *Router) Active() (Provider, error) {
	switch r.cfg.Mode {
	case config.ModeMock:
		if p := r.firstMock(); p != nil {
			return p, nil
		}
		return nil, NewProviderError(fmt.Errorf("no mock provider registered"))
	case config.ModeLive:
		p := r.firstLive()
		if p == nil {
			return nil, NewProviderError(fmt.Errorf("no live provider registered"))
		}
		if !r.cfg.ProviderHasCredentials(p.Name()) {
			return nil, NewMissingCredentialError(p.Name(), strings.Join(r.cfg.MissingCredentials(p.Name()), ", "))
		}
		return p, nil
	case config.ModeHybrid:
		if p := r.firstLive(); p != nil && r.cfg.ProviderHasCredentials(p.Name()) {
			return p, nil
		}
		if p := r.firstMock(); p != nil {
			return p, nil
		}
		return nil, NewProviderError(fmt.Errorf("no provider available in hybrid mode"))
	}
	return nil, NewProviderError(fmt.Errorf("unknown mode %q", r.cfg.Mode))
}

func (r *Router) firstMock() Provider {
	return r.best(func(p Provider) bool { return isMockProvider(p.Name()) })
}

func (r *Router) firstLive() Provider {
	return r.best(func(p Provider) bool { return !isMockProvider(p.Name()) })
}

// best returns the matching provider with the lowest configured priority.
// Providers missing from the config sort last; ties keep registration order.
func (r *Router) best(match func(Provider) bool) Provider {
	var (
		chosen Provider
		rank   int
	)
	for _, p := range r.providers {
		if !match(p) {
			continue
		}
		pr := r.priority(p.Name())
		if chosen == nil || pr < rank {
			chosen, rank = p, pr
		}
	}
	return chosen
}

func (r *Router) priority(name string) int {
	if pc, ok := r.cfg.Providers[name]; ok {
		return pc.Priority
	}
	return math.MaxInt
}

func isMockProvider(name string) bool {
	return strings.HasPrefix(name, "mock_")
}

func (r *Router) ProviderInfos() []ProviderInfo {
	active, _ := r.Active()

	var infos []ProviderInfo
	for _, p := range r.providers {
		info := ProviderInfo{
			Name:         p.Name(),
			Capabilities: p.Capabilities(),
			Tier:         p.Tier(),
		}
		if avail, reason := p.Available(); avail {
			info.Status = "active"
		} else {
			info.Status = "no_credentials"
			info.Reason = reason
		}
		switch {
		case r.cfg.Mode == config.ModeMock && !isMockProvider(p.Name()):
			info.Status = "inactive"
			info.Reason = "mode is mock"
		case r.cfg.Mode == config.ModeLive && isMockProvider(p.Name()):
			info.Status = "inactive"
			info.Reason = "mode is live"
		case info.Status == "active" && active != nil && active.Name() != p.Name():
			info.Status = "standby"
			info.Reason = fmt.Sprintf("%s answers in %s mode", active.Name(), r.cfg.Mode)
		}
		infos = append(infos, info)
	}
	return infos
}

// Doctor summarizes whether the current mode can serve searches.
func (r *Router) Doctor() DoctorReport {
	report := DoctorReport{
		Mode:      r.cfg.Mode,
		Providers: r.ProviderInfos(),
	}
	active, err := r.Active()
	if err != nil {
		report.Summary = err.Error()
		return report
	}
	report.Healthy = true
	if isMockProvider(active.Name()) {
		report.Summary = fmt.Sprintf("%s mode: searches use canned %s results", r.cfg.Mode, active.Name())
	} else {
		report.Summary = fmt.Sprintf("%s mode: searches use %s", r.cfg.Mode, active.Name())
	}
	return report
}
