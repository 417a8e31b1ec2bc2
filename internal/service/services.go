package service

import (
	"github.com/MKhiriev/go-bio-link/internal/adapter"
	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/crypto"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/internal/workers"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	ResolverService ResolverService
	AliasService    AliasService
	TemplateService TemplateService
	WidgetService   WidgetService
}

// WidgetClients bundles the provider clients handed to the widget service.
// Any of them may be nil when the provider is not configured.
type WidgetClients struct {
	NowPlaying    adapter.NowPlayingClient
	Weather       adapter.WeatherClient
	CodeActivity  adapter.CodeActivityClient
	Contributions adapter.ContributionsClient
}

func NewServices(storages *store.Storages, clients WidgetClients, cache *workers.WidgetCache, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasherService()
	profileService := NewProfileService(storages.ProfileRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.ProfileRepository, hasher, cfg.App, logger),
		ProfileService:  profileService,
		ResolverService: NewResolverService(storages.ProfileRepository, logger),
		AliasService:    NewAliasService(storages.ProfileRepository, profileService, logger),
		TemplateService: NewTemplateService(storages.TemplateRepository, storages.ProfileRepository, profileService, logger),
		WidgetService:   NewWidgetService(profileService, clients.NowPlaying, clients.Weather, clients.CodeActivity, clients.Contributions, cache, logger),
	}
}
