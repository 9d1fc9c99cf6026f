package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// simSettings are the user-adjustable parameters persisted across runs.
type simSettings struct {
	ElementCount  int     `yaml:"elementCount"`
	Pitch         float64 `yaml:"pitch"`
	WaveSpeed     float64 `yaml:"waveSpeed"`
	MovieDuration float64 `yaml:"movieDuration"`
	FrameRate     float64 `yaml:"frameRate"`
}

// defaultSimSettings returns the built-in configuration.
func defaultSimSettings() *simSettings {
	return &simSettings{
		ElementCount:  defaultElementCount,
		Pitch:         defaultPitch,
		WaveSpeed:     defaultWaveSpeed,
		MovieDuration: defaultMovieDuration,
		FrameRate:     defaultFrameRate,
	}
}

// Storage keys inside the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "simulation"
)

// settingsManager loads and saves simSettings through a gdata store. A nil
// store degrades to in-memory defaults without error.
type settingsManager struct {
	store    *gdata.Manager
	settings *simSettings
}

func newSettingsManager(store *gdata.Manager) *settingsManager {
	sm := &settingsManager{
		store:    store,
		settings: defaultSimSettings(),
	}
	if err := sm.load(); err != nil {
		log.Printf("Loading settings failed: %v (using defaults)", err)
	}
	return sm
}

// current returns the live settings value.
func (sm *settingsManager) current() *simSettings {
	return sm.settings
}

// load reads settings from the store, falling back to defaults when the
// store is nil or holds nothing yet.
func (sm *settingsManager) load() error {
	if sm.store == nil {
		sm.settings = defaultSimSettings()
		return nil
	}
	if !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = defaultSimSettings()
		return nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = defaultSimSettings()
		return fmt.Errorf("loading settings: %w", err)
	}
	var loaded simSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = defaultSimSettings()
		return fmt.Errorf("unmarshaling settings: %w", err)
	}
	sm.settings = &loaded
	return nil
}

// save writes the current settings to the store. A nil store is a no-op.
func (sm *settingsManager) save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
