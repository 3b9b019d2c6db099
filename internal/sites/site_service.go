package sites

import (
	"context"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"
	"site-analytics/internal/shared/loggers"
	"site-analytics/internal/shared/validators"
	"site-analytics/internal/stores"
)

const (
	lookupZone       = "zone"
	lookupDeployment = "deployment"
)

//go:generate mockgen -source=site_service.go -destination=./mocks/site_service_mock.go -package=mocks
type SiteService interface {
	// Settings returns the effective settings with the token masked.
	Settings(ctx context.Context) (*models.Settings, error)
	// Connection returns the effective settings used for upstream calls: saved values
	// first, then the configured fallback.
	Connection(ctx context.Context) (*models.Settings, error)
	// UpdateSettings saves the non-empty fields of update over the saved settings.
	// A masked token is ignored so that a settings form can be sent back unchanged.
	UpdateSettings(ctx context.Context, update *models.Settings) (*models.Settings, error)
	ResetSettings(ctx context.Context) error
	// ResolveZone looks up the zone of domain (or of the configured domain when empty)
	// and saves both into the settings.
	ResolveZone(ctx context.Context, domain string) (*models.Settings, error)
	LastDeployment(ctx context.Context) (*models.Deployment, error)
}

type siteService struct {
	store    stores.SettingsStore
	client   cloudflare.Client
	fallback models.Settings
	validate *validators.Validate
}

func NewSiteService(store stores.SettingsStore, client cloudflare.Client, fallback models.Settings) SiteService {
	return &siteService{
		store:    store,
		client:   client,
		fallback: fallback,
		validate: validators.New("json"),
	}
}

func (s *siteService) Settings(ctx context.Context) (*models.Settings, error) {
	conn, err := s.Connection(ctx)
	if err != nil {
		return nil, err
	}
	masked := conn.Masked()
	return &masked, nil
}

func (s *siteService) Connection(ctx context.Context) (*models.Settings, error) {
	stored, err := s.store.Get(ctx)
	if err != nil {
		return nil, errSettingsStoreFailed(err)
	}
	conn := stored.Merge(s.fallback)
	return &conn, nil
}

func (s *siteService) UpdateSettings(ctx context.Context, update *models.Settings) (*models.Settings, error) {
	settings, err := s.updateSettings(ctx, update)
	metricSettingsUpdateTotal.WithLabelValues(errorCodeOf(err)).Inc()
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *siteService) updateSettings(ctx context.Context, update *models.Settings) (*models.Settings, error) {
	candidate := *update
	if models.IsMaskedToken(candidate.APIToken) {
		candidate.APIToken = ""
	}
	if err := s.validate.Struct(&candidate); err != nil {
		return nil, errInvalidSettings(validators.Describe(err))
	}

	stored, err := s.store.Get(ctx)
	if err != nil {
		return nil, errSettingsStoreFailed(err)
	}
	saved := candidate.Merge(*stored)
	if err := s.store.Save(ctx, &saved); err != nil {
		return nil, errSettingsStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().
		Bool("token_changed", candidate.APIToken != "").
		Str(loggers.FieldZoneID, saved.ZoneID).
		Msg("settings updated")

	effective := saved.Merge(s.fallback).Masked()
	return &effective, nil
}

func (s *siteService) ResetSettings(ctx context.Context) error {
	if err := s.store.Delete(ctx); err != nil {
		return errSettingsStoreFailed(err)
	}
	loggers.Ctx(ctx).Info().Msg("settings reset")
	return nil
}

func (s *siteService) ResolveZone(ctx context.Context, domain string) (*models.Settings, error) {
	settings, err := s.resolveZone(ctx, domain)
	metricLookupTotal.WithLabelValues(lookupZone, errorCodeOf(err)).Inc()
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *siteService) resolveZone(ctx context.Context, domain string) (*models.Settings, error) {
	conn, err := s.Connection(ctx)
	if err != nil {
		return nil, err
	}
	if domain == "" {
		domain = conn.Domain
	}
	if domain == "" {
		return nil, errDomainMissing()
	}
	if err := s.validate.Var(domain, "fqdn"); err != nil {
		return nil, errInvalidSettings([]string{"domain (fqdn)"})
	}
	if conn.APIToken == "" {
		return nil, errTokenMissing()
	}

	zoneID, err := s.client.LookupZoneID(ctx, conn.APIToken, domain)
	if err != nil {
		return nil, errZoneLookupFailed(domain, err)
	}

	stored, err := s.store.Get(ctx)
	if err != nil {
		return nil, errSettingsStoreFailed(err)
	}
	stored.Domain = domain
	stored.ZoneID = zoneID
	if err := s.store.Save(ctx, stored); err != nil {
		return nil, errSettingsStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Str(loggers.FieldZoneID, zoneID).Str("domain", domain).Msg("zone resolved")

	effective := stored.Merge(s.fallback).Masked()
	return &effective, nil
}

func (s *siteService) LastDeployment(ctx context.Context) (*models.Deployment, error) {
	deployment, err := s.lastDeployment(ctx)
	metricLookupTotal.WithLabelValues(lookupDeployment, errorCodeOf(err)).Inc()
	if err != nil {
		return nil, err
	}
	return deployment, nil
}

func (s *siteService) lastDeployment(ctx context.Context) (*models.Deployment, error) {
	conn, err := s.Connection(ctx)
	if err != nil {
		return nil, err
	}
	if conn.APIToken == "" {
		return nil, errTokenMissing()
	}
	if conn.AccountID == "" || conn.ProjectName == "" {
		return nil, errDeploymentNotConfigured()
	}

	deployment, err := s.client.LastDeployment(ctx, conn.APIToken, conn.AccountID, conn.ProjectName)
	if err != nil {
		return nil, errDeploymentLookupFailed(err)
	}
	return deployment, nil
}
