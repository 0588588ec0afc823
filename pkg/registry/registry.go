// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultPath is where the repo keeps its activity registry.
const DefaultPath = "configs/activity-registry.json"

// Load reads the registry from path. A missing file is an error; callers
// that want create-on-demand use LoadOrInit.
func Load(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// LoadOrInit reads the registry from path, returning an empty registry when
// the file does not exist yet.
func LoadOrInit(path string) (*ActivityRegistry, error) {
	reg, err := Load(path)
	if os.IsNotExist(err) {
		return &ActivityRegistry{
			Version:     "1.0.0",
			LastUpdated: time.Now().Format(time.RFC3339),
		}, nil
	}
	return reg, err
}

// Save writes the registry to path, stamping LastUpdated and creating the
// parent directory when needed.
func (r *ActivityRegistry) Save(path string) error {
	r.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write registry %s: %w", path, err)
	}
	return nil
}

// Find returns the activity with the given id.
func (r *ActivityRegistry) Find(id string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Add appends a new activity. Duplicate ids are rejected.
func (r *ActivityRegistry) Add(a Activity) error {
	if a.ID == "" {
		return fmt.Errorf("activity id is required")
	}
	if _, exists := r.Find(a.ID); exists {
		return fmt.Errorf("activity %q already exists", a.ID)
	}
	r.Activities = append(r.Activities, a)
	return nil
}

// UpdateField sets a single named field on an existing activity.
func (r *ActivityRegistry) UpdateField(id, field, value string) error {
	a, ok := r.Find(id)
	if !ok {
		return fmt.Errorf("activity %q not found", id)
	}

	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value %q: %w", value, err)
		}
		a.Retries = retries
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Validate checks the structural invariants of the registry: non-empty,
// unique ids, and the fields the worker tooling depends on.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	seen := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity missing id")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %q missing displayName", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %q missing taskType", a.ID)
		}
		if a.Category == "" {
			return fmt.Errorf("activity %q missing category", a.ID)
		}
	}
	return nil
}
