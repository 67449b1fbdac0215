package template

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"slub/librml/pkg/config"
	"slub/librml/pkg/librml/model"
	"slub/librml/pkg/telemetry/logging"
	"slub/librml/pkg/telemetry/metrics"
)

// Reload triggers, used as metric labels.
const (
	TriggerInitial  = "initial"
	TriggerWatch    = "watch"
	TriggerSchedule = "schedule"
)

// Manager holds the templates of one directory. It is safe for concurrent
// use; a reload swaps the whole set at once.
type Manager struct {
	cfg     config.TemplatesConfig
	logger  *logging.Logger
	metrics *metrics.Collector

	mu        sync.RWMutex
	templates map[string]*Template
}

// NewManager creates a manager for the configured template directory. It
// does not read the directory; call Load. logger and collector may be nil.
func NewManager(cfg config.TemplatesConfig, logger *logging.Logger, collector *metrics.Collector) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.Extension == "" {
		cfg.Extension = config.DefaultTemplatesExtension
	}
	return &Manager{
		cfg:       cfg,
		logger:    logger.With("component", "template.manager"),
		metrics:   collector,
		templates: make(map[string]*Template),
	}
}

// Load scans the template directory.
func (m *Manager) Load() error {
	return m.Reload(TriggerInitial)
}

// Reload rescans the template directory and replaces the loaded set.
// Templates that fail to load are logged and skipped. An error is returned
// only when the directory itself cannot be read, in which case the
// previously loaded set is kept.
func (m *Manager) Reload(trigger string) error {
	loaded, err := m.scan()
	m.metrics.RecordTemplateReload(trigger, err)
	if err != nil {
		m.logger.Error("Template reload failed", "trigger", trigger, "error", err)
		return err
	}

	m.mu.Lock()
	m.templates = loaded
	m.mu.Unlock()

	m.metrics.SetTemplatesLoaded(len(loaded))
	m.logger.Info("Templates loaded", "trigger", trigger, "count", len(loaded), "dir", m.cfg.Dir)
	return nil
}

func (m *Manager) scan() (map[string]*Template, error) {
	if err := statDir(m.cfg.Dir); err != nil {
		return nil, fmt.Errorf("failed to scan template directory: %w", err)
	}
	loaded := make(map[string]*Template)
	err := filepath.WalkDir(m.cfg.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".") && path != m.cfg.Dir
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || !strings.EqualFold(filepath.Ext(path), m.cfg.Extension) {
			return nil
		}

		t, err := ParseFile(path)
		if err != nil {
			m.logger.Error("Can not load template", "path", path, "error", err)
			return nil
		}
		if prev, ok := loaded[t.ID]; ok {
			m.logger.Error("Duplicate template id, skipping",
				"template_id", t.ID,
				"path", path,
				"loaded_from", prev.Path,
			)
			return nil
		}
		m.logger.Debug("Template loaded", "template_id", t.ID, "path", path, "variables", t.VariableNames())
		loaded[t.ID] = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan template directory %q: %w", m.cfg.Dir, err)
	}
	return loaded, nil
}

// List returns the loaded templates sorted by id.
func (m *Manager) List() []*Template {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(m.templates))
	out := make([]*Template, len(ids))
	for i, id := range ids {
		out[i] = m.templates[id]
	}
	return out
}

// IDs returns the loaded template ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.templates))
}

// Get returns the template with the given id.
func (m *Manager) Get(id string) (*Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.templates[id]
	if !ok {
		return nil, &UnknownTemplateError{ID: id}
	}
	return t, nil
}

// Render fills the template id with values and returns the document for
// itemID. The rendered document's id and tenant are always itemID and
// tenant. A variable without a value is logged and rendered as an empty
// string.
func (m *Manager) Render(id, itemID, tenant string, values map[string]any) (*model.Document, error) {
	doc, err := m.render(id, itemID, tenant, values)
	m.metrics.RecordTemplateRender(id, err)
	return doc, err
}

func (m *Manager) render(id, itemID, tenant string, values map[string]any) (*model.Document, error) {
	t, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	args := make(map[string]any, len(t.Variables))
	for _, v := range t.Variables {
		value, ok := values[v.Name]
		if !ok {
			m.logger.Error("No value for template variable",
				"template_id", id,
				"item_id", itemID,
				"variable", v.Name,
			)
			value = ""
		}
		args[v.Name] = value
	}

	doc, err := t.execute(itemID, tenant, args)
	if err != nil {
		m.logger.Error("Template render failed", "template_id", id, "item_id", itemID, "error", err)
		return nil, err
	}
	m.logger.Debug("Template rendered", "template_id", id, "item_id", itemID)
	return doc, nil
}

// Dir returns the template directory.
func (m *Manager) Dir() string {
	return m.cfg.Dir
}

// Extension returns the template file extension.
func (m *Manager) Extension() string {
	return m.cfg.Extension
}

// IsNotValid reports whether err is or wraps a TemplateNotValidError,
// including an UnknownTemplateError.
func IsNotValid(err error) bool {
	var notValid *TemplateNotValidError
	return errors.As(err, &notValid)
}

// statDir reports an error if path is not a readable directory.
func statDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
