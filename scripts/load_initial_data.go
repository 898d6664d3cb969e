package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"organisation-dashboard-backend/internal/config"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Simple structures that directly match the seed file schema
type TeamSeed struct {
	Name           string `yaml:"name"`
	OrganisationID string `yaml:"organisation_id"`
	ProjectName    string `yaml:"project_name,omitempty"`
	Description    string `yaml:"description,omitempty"`
	TeamManager    string `yaml:"team_manager_id,omitempty"`
}

type SeedFile struct {
	Teams []TeamSeed `yaml:"teams"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory containing seed yaml files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := gateway.NewClient(cfg.RemoteAPIBaseURL, cfg.RemoteAPITimeout())
	teams := gateway.NewTeamClient(client)
	projects := gateway.NewProjectClient(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var files []string
	err = filepath.WalkDir(*dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", *dataDir, err)
	}
	if len(files) == 0 {
		log.Fatalf("No seed files found under %s", *dataDir)
	}

	loaded := 0
	for _, file := range files {
		n, err := loadFile(ctx, teams, projects, file)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", file, err)
		}
		loaded += n
	}
	log.Printf("Loaded %d teams from %d files", loaded, len(files))
}

func loadFile(ctx context.Context, teams *gateway.TeamClient, projects *gateway.ProjectClient, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("invalid yaml: %w", err)
	}

	loaded := 0
	for _, entry := range seed.Teams {
		if err := loadTeam(ctx, teams, projects, entry); err != nil {
			return loaded, fmt.Errorf("team %q: %w", entry.Name, err)
		}
		loaded++
	}
	return loaded, nil
}

// loadTeam creates one team and, when the seed names a project, assigns the
// team to it. Project names are resolved against the organisation's project
// list because seed files are written by hand and ids are not stable across
// environments.
func loadTeam(ctx context.Context, teams *gateway.TeamClient, projects *gateway.ProjectClient, entry TeamSeed) error {
	organisationID, err := uuid.Parse(entry.OrganisationID)
	if err != nil {
		return fmt.Errorf("invalid organisation_id %q: %w", entry.OrganisationID, err)
	}

	team, err := buildTeam(entry, organisationID)
	if err != nil {
		return err
	}

	created, err := teams.Create(ctx, team)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	log.Printf("Created team %q (%s)", created.Name, created.ID)

	if entry.ProjectName == "" {
		return nil
	}

	projectID, err := resolveProject(ctx, projects, organisationID, entry.ProjectName)
	if err != nil {
		return err
	}
	if err := teams.AssignToProject(ctx, *created.ID, projectID); err != nil {
		return fmt.Errorf("assign to %q: %w", entry.ProjectName, err)
	}
	log.Printf("Assigned team %q to project %q", created.Name, entry.ProjectName)
	return nil
}

func buildTeam(entry TeamSeed, organisationID uuid.UUID) (*models.Team, error) {
	team := &models.Team{
		Name:           strings.TrimSpace(entry.Name),
		OrganisationID: organisationID,
		Description:    entry.Description,
	}
	if team.Name == "" {
		return nil, fmt.Errorf("missing team name")
	}
	if entry.TeamManager != "" {
		managerID, err := uuid.Parse(entry.TeamManager)
		if err != nil {
			return nil, fmt.Errorf("invalid team_manager_id %q: %w", entry.TeamManager, err)
		}
		team.TeamManagerID = &managerID
	}
	return team, nil
}

func resolveProject(ctx context.Context, projects *gateway.ProjectClient, organisationID uuid.UUID, name string) (uuid.UUID, error) {
	available, err := projects.List(ctx, organisationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("list projects: %w", err)
	}
	for _, project := range available {
		if strings.EqualFold(project.Name, name) {
			return project.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("project %q not found in organisation %s", name, organisationID)
}
