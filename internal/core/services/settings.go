package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/core/ports/driving"
	"github.com/custodia-labs/osmswap/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySurfaceTypes       = "construction.surface_types"
	keyBoundaryConditions = "construction.boundary_conditions"
	keyAreaEpsilon        = "construction.area_epsilon"
	keyMatching           = "construction.matching"
	keySizingEpsilon      = "sizing.epsilon"
	keyEquipmentToken     = "equipment.token"
	keyEquipmentIdem      = "equipment.idempotent"
	keyLightingSchedule   = "lighting.schedule"
	keyLightingSensor     = "lighting.ems_sensor_token"
	keyLightingName       = "lighting.ems_name_token"
	keyInsertion          = "policy.insertion"
	keyMeasureDir         = "workflow.measure_dir"
	keyHistoryEnabled     = "history.enabled"

	prefixArguments = "workflow.arguments."
	prefixStandards = "standards."
	prefixSwappers  = "swappers."
)

// Standards catalog entry fields.
const (
	standardsTemplate     = "template"
	standardsBuildingType = "building_type"
	standardsSpaceType    = "space_type"
)

// SettingsService resolves swap settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get resolves the current settings. Unset or invalid keys keep their defaults.
func (s *SettingsService) Get() (domain.SwapSettings, error) {
	settings := domain.DefaultSwapSettings()
	if s.configStore == nil {
		return settings, nil
	}

	for _, name := range domain.SwapOrder() {
		settings.Enabled[name] = s.getBool(prefixSwappers+name, settings.Enabled[name])
	}

	c := &settings.Construction
	c.SurfaceTypes = s.getStrings(keySurfaceTypes, c.SurfaceTypes)
	c.BoundaryConditions = s.getStrings(keyBoundaryConditions, c.BoundaryConditions)
	c.AreaEpsilon = s.getPositive(keyAreaEpsilon, c.AreaEpsilon)
	if mode := domain.MatchMode(s.configStore.GetString(keyMatching)); mode.IsValid() {
		c.Matching = mode
	}

	settings.Sizing.Epsilon = s.getPositive(keySizingEpsilon, settings.Sizing.Epsilon)

	settings.Equipment.Token = s.getString(keyEquipmentToken, settings.Equipment.Token)
	settings.Equipment.Idempotent = s.getBool(keyEquipmentIdem, settings.Equipment.Idempotent)

	l := &settings.Lighting
	l.Schedule = s.getString(keyLightingSchedule, l.Schedule)
	l.SensorToken = s.getString(keyLightingSensor, l.SensorToken)
	l.NameToken = s.getString(keyLightingName, l.NameToken)

	if policy := domain.InsertionPolicy(s.configStore.GetString(keyInsertion)); policy.IsValid() {
		settings.Insertion = policy
	}

	settings.Workflow.MeasureDir = s.configStore.GetString(keyMeasureDir)
	for _, key := range s.configStore.Keys(prefixArguments) {
		if settings.Workflow.Arguments == nil {
			settings.Workflow.Arguments = make(map[string]any)
		}
		val, _ := s.configStore.Get(key)
		settings.Workflow.Arguments[strings.TrimPrefix(key, prefixArguments)] = val
	}

	settings.HistoryEnabled = s.getBool(keyHistoryEnabled, settings.HistoryEnabled)

	if catalog, ok := s.catalog(); ok {
		settings.Standards = catalog
	}

	return settings, nil
}

// GetDefaults returns the built-in settings.
func (s *SettingsService) GetDefaults() domain.SwapSettings {
	return domain.DefaultSwapSettings()
}

// Set validates value for key and persists it with its natural type.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// parseSetting converts a command-line value into the type stored under key.
func parseSetting(key, value string) (any, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, key, reason)
	}

	switch key {
	case keySurfaceTypes, keyBoundaryConditions:
		list := splitList(value)
		if len(list) == 0 {
			return nil, invalid("expected a comma separated list")
		}
		return list, nil

	case keyAreaEpsilon, keySizingEpsilon:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return nil, invalid("expected a positive number")
		}
		return f, nil

	case keyMatching:
		if !domain.MatchMode(value).IsValid() {
			return nil, invalid("expected strict or nearest")
		}
		return value, nil

	case keyInsertion:
		if !domain.InsertionPolicy(value).IsValid() {
			return nil, invalid("expected fail or skip")
		}
		return value, nil

	case keyEquipmentIdem, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid("expected true or false")
		}
		return b, nil

	case keyEquipmentToken, keyLightingSchedule, keyLightingSensor, keyLightingName:
		if strings.TrimSpace(value) == "" {
			return nil, invalid("must not be empty")
		}
		return value, nil

	case keyMeasureDir:
		return value, nil
	}

	switch {
	case strings.HasPrefix(key, prefixSwappers):
		name := strings.TrimPrefix(key, prefixSwappers)
		if !slices.Contains(domain.SwapOrder(), name) {
			return nil, invalid("unknown swapper")
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid("expected true or false")
		}
		return b, nil

	case strings.HasPrefix(key, prefixArguments):
		if len(key) == len(prefixArguments) {
			return nil, invalid("missing argument name")
		}
		return argumentValue(value), nil

	case strings.HasPrefix(key, prefixStandards):
		if _, field, ok := standardsKey(key); !ok || field == "" {
			return nil, invalid("expected standards.<space type>.{template,building_type,space_type}")
		}
		return value, nil
	}

	return nil, invalid("unknown setting")
}

// argumentValue keeps measure arguments typed: numbers and booleans are
// stored as such, anything else as a string.
func argumentValue(value string) any {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return value
}

// standardsKey splits "standards.<entry>.<field>". Entry names may contain dots.
func standardsKey(key string) (entry, field string, ok bool) {
	rest := strings.TrimPrefix(key, prefixStandards)
	i := strings.LastIndex(rest, ".")
	if i <= 0 {
		return "", "", false
	}
	entry, field = rest[:i], rest[i+1:]
	switch field {
	case standardsTemplate, standardsBuildingType, standardsSpaceType:
		return entry, field, true
	default:
		return entry, "", true
	}
}

// catalog builds the configured standards catalog. Any configured entry
// replaces the built-in catalog; incomplete entries are dropped.
func (s *SettingsService) catalog() (domain.StandardsCatalog, bool) {
	keys := s.configStore.Keys(prefixStandards)
	if len(keys) == 0 {
		return domain.StandardsCatalog{}, false
	}

	var order []string
	tags := make(map[string]domain.StandardsTag)
	for _, key := range keys {
		entry, field, ok := standardsKey(key)
		if !ok || field == "" {
			continue
		}
		tag, seen := tags[entry]
		if !seen {
			order = append(order, entry)
		}
		val := s.configStore.GetString(key)
		switch field {
		case standardsTemplate:
			tag.Template = val
		case standardsBuildingType:
			tag.BuildingType = val
		case standardsSpaceType:
			tag.SpaceType = val
		}
		tags[entry] = tag
	}

	for _, entry := range order {
		tag := tags[entry]
		if tag.Template == "" || tag.BuildingType == "" || tag.SpaceType == "" {
			logger.Warn("ignoring incomplete standards entry %q", entry)
			delete(tags, entry)
		}
	}
	if len(tags) == 0 {
		return domain.StandardsCatalog{}, false
	}
	return domain.NewStandardsCatalog(order, tags), true
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getPositive(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
