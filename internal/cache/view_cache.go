// Package cache holds the derived read models the dashboard renders from:
// the per-organisation team list and the project-id to name lookup. Both are
// recomputed through the gateway after any successful mutation; the cache
// favours consistency over saving a recomputation, so a stale view is never
// served after a mutation succeeded.
package cache

import (
	"context"
	"sort"
	"sync"

	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/logger"
	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// NoProjectName is returned when a team has no project or the project is
// unknown to the remote store.
const NoProjectName = "No Project"

type organisationView struct {
	teams        []models.Team
	projectNames map[uuid.UUID]string
}

// ViewCache maintains derived read models keyed by organisation. It is
// written only through Invalidate and read by any number of renderers.
type ViewCache struct {
	teamGateway    gateway.TeamGateway
	projectGateway gateway.ProjectGateway

	mu    sync.Mutex
	views map[uuid.UUID]*organisationView

	// retained keeps the last project-name lookup per organisation across
	// invalidations, so the lookup is only recomputed when the set of
	// referenced project ids actually changed.
	retained map[uuid.UUID]map[uuid.UUID]string
}

// NewViewCache creates an empty cache over the given gateways.
func NewViewCache(teamGateway gateway.TeamGateway, projectGateway gateway.ProjectGateway) *ViewCache {
	return &ViewCache{
		teamGateway:    teamGateway,
		projectGateway: projectGateway,
		views:          make(map[uuid.UUID]*organisationView),
		retained:       make(map[uuid.UUID]map[uuid.UUID]string),
	}
}

// Invalidate discards the derived views for an organisation. Safe to call
// any number of times, including after the triggering modal has closed.
func (c *ViewCache) Invalidate(organisationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if view, ok := c.views[organisationID]; ok {
		c.retained[organisationID] = view.projectNames
	}
	delete(c.views, organisationID)
}

// GetTeams returns the organisation's team list ordered by creation time,
// then name, recomputing it from the remote store when invalidated.
func (c *ViewCache) GetTeams(ctx context.Context, organisationID uuid.UUID) ([]models.Team, error) {
	view, err := c.load(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	return append([]models.Team(nil), view.teams...), nil
}

// GetProjectName resolves a project id to its display name. A nil id and an
// id the remote store no longer knows both yield NoProjectName.
func (c *ViewCache) GetProjectName(ctx context.Context, organisationID uuid.UUID, projectID *uuid.UUID) (string, error) {
	if projectID == nil {
		return NoProjectName, nil
	}

	view, err := c.load(ctx, organisationID)
	if err != nil {
		return "", err
	}

	if name, ok := view.projectNames[*projectID]; ok {
		return name, nil
	}
	return NoProjectName, nil
}

// load returns the current view, recomputing it when absent.
func (c *ViewCache) load(ctx context.Context, organisationID uuid.UUID) (*organisationView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if view, ok := c.views[organisationID]; ok {
		return view, nil
	}

	teams, err := c.teamGateway.List(ctx, organisationID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if !teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].CreatedAt.Before(teams[j].CreatedAt)
		}
		return teams[i].Name < teams[j].Name
	})

	referenced := make(map[uuid.UUID]struct{})
	for _, team := range teams {
		if team.ProjectID != nil {
			referenced[*team.ProjectID] = struct{}{}
		}
	}

	names := c.retained[organisationID]
	if !sameIDSet(names, referenced) {
		names = c.resolveProjectNames(ctx, organisationID, referenced)
	}

	view := &organisationView{
		teams:        teams,
		projectNames: names,
	}
	c.views[organisationID] = view
	return view, nil
}

// sameIDSet reports whether the retained lookup covers exactly the
// referenced project ids.
func sameIDSet(names map[uuid.UUID]string, referenced map[uuid.UUID]struct{}) bool {
	if len(names) != len(referenced) {
		return false
	}
	for id := range referenced {
		if _, ok := names[id]; !ok {
			return false
		}
	}
	return true
}

// resolveProjectNames resolves each referenced project id to a name. A
// project that disappeared from the remote store is simply absent from the
// lookup; readers fall back to NoProjectName.
func (c *ViewCache) resolveProjectNames(ctx context.Context, organisationID uuid.UUID, referenced map[uuid.UUID]struct{}) map[uuid.UUID]string {
	log := logger.WithContext(ctx).WithField("organisation_id", organisationID)

	names := make(map[uuid.UUID]string, len(referenced))
	for projectID := range referenced {
		project, err := c.projectGateway.GetByID(ctx, projectID)
		if err != nil {
			log.Warnf("Failed to resolve project name for %s: %v", projectID, err)
			continue
		}
		names[projectID] = project.Name
	}
	return names
}
