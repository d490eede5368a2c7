package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"channel-relay/internal/config"
	"channel-relay/internal/database"
	"channel-relay/internal/database/models"
	"channel-relay/internal/repository"
	"channel-relay/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures for scripts/data/*.yaml
type ChatData struct {
	ChatID int64  `yaml:"chat_id"`
	Title  string `yaml:"title,omitempty"`
}

type TenantData struct {
	Name         string     `yaml:"name"`
	OwnerUserID  int64      `yaml:"owner_user_id,omitempty"`
	Sources      []ChatData `yaml:"sources,omitempty"`
	Destinations []ChatData `yaml:"destinations,omitempty"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type seeder struct {
	db         *gorm.DB
	tenants    *service.TenantService
	activation *service.ActivationService
	routing    *service.RoutingService
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	validate := validator.New()
	tenantRepo := repository.NewTenantRepository(db)
	s := &seeder{
		db:         db,
		tenants:    service.NewTenantService(tenantRepo, validate),
		activation: service.NewActivationService(repository.NewActivationTokenRepository(db), tenantRepo),
		routing: service.NewRoutingService(
			repository.NewSourceBindingRepository(db),
			repository.NewDestinationBindingRepository(db),
			validate,
		),
	}

	if err := s.loadDataFromYAMLFiles(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	tenantCreated, bindings := 0, 0
	for _, tenantData := range tenants {
		tenantID, created, err := s.createTenant(ctx, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		if created {
			tenantCreated++
		}

		for _, chat := range tenantData.Sources {
			if err := s.routing.AddSource(ctx, tenantID, chat.ChatID, chat.Title); err != nil {
				log.Printf("⚠️  Warning: failed to bind source %d to %s: %v", chat.ChatID, tenantData.Name, err)
				continue
			}
			bindings++
		}
		for _, chat := range tenantData.Destinations {
			if err := s.routing.AddDestination(ctx, tenantID, chat.ChatID, chat.Title); err != nil {
				log.Printf("⚠️  Warning: failed to bind destination %d to %s: %v", chat.ChatID, tenantData.Name, err)
				continue
			}
			bindings++
		}
	}

	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))
	log.Printf("📋 Bindings: %d upserted", bindings)
	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

// createTenant returns the tenant with the seeded name, creating it when missing.
// An existing tenant is handed to the seeded owner if they differ. A new tenant
// without an owner gets an activation token printed to the log.
func (s *seeder) createTenant(ctx context.Context, tenantData TenantData) (uuid.UUID, bool, error) {
	var tenant models.Tenant
	err := s.db.WithContext(ctx).Where("name = ?", tenantData.Name).First(&tenant).Error
	if err == nil {
		if owner := tenantData.OwnerUserID; owner != 0 && (tenant.OwnerUserID == nil || *tenant.OwnerUserID != owner) {
			if err := s.tenants.ReassignOwner(ctx, tenant.ID, owner); err != nil {
				return uuid.Nil, false, fmt.Errorf("failed to reassign owner: %w", err)
			}
			log.Printf("👤 Tenant %s reassigned to %d", tenantData.Name, owner)
		}
		return tenant.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	tenantID, err := s.tenants.CreateTenant(ctx, tenantData.OwnerUserID, tenantData.Name)
	if err != nil {
		return uuid.Nil, false, err
	}

	if tenantData.OwnerUserID == 0 {
		token, err := s.activation.IssueToken(ctx, tenantID)
		if err != nil {
			return uuid.Nil, false, fmt.Errorf("failed to issue activation token: %w", err)
		}
		log.Printf("🔑 Tenant %s activation token: %s", tenantData.Name, token)
	}

	return tenantID, true, nil
}
